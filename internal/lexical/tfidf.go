package lexical

import "math"

// Similarity computes the cosine similarity between two texts under a TF-IDF
// weighting fitted on exactly those two documents. Scores land in [0, 1]:
// identical non-empty texts score 1.0, texts sharing no vocabulary score 0.0,
// and either text being empty after normalization scores 0.0.
func Similarity(a, b string) (float64, error) {
	normA, err := Normalize(a)
	if err != nil {
		return 0, err
	}
	normB, err := Normalize(b)
	if err != nil {
		return 0, err
	}

	tokensA := Tokenize(normA)
	tokensB := Tokenize(normB)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0, nil
	}

	tfA := termCounts(tokensA)
	tfB := termCounts(tokensB)

	vocab := make(map[string]struct{}, len(tfA)+len(tfB))
	for t := range tfA {
		vocab[t] = struct{}{}
	}
	for t := range tfB {
		vocab[t] = struct{}{}
	}

	// Smoothed inverse document frequency over the two-document corpus:
	// idf(t) = ln((1 + n) / (1 + df(t))) + 1 with n = 2.
	vecA := make(map[string]float64, len(tfA))
	vecB := make(map[string]float64, len(tfB))
	for term := range vocab {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1.0
		if tfA[term] > 0 {
			vecA[term] = float64(tfA[term]) * idf
		}
		if tfB[term] > 0 {
			vecB[term] = float64(tfB[term]) * idf
		}
	}

	normalizeL2(vecA)
	normalizeL2(vecB)

	dot := 0.0
	for term, wa := range vecA {
		if wb, ok := vecB[term]; ok {
			dot += wa * wb
		}
	}
	if dot > 1.0 {
		dot = 1.0
	}
	return dot, nil
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

func normalizeL2(vec map[string]float64) {
	sum := 0.0
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for term, w := range vec {
		vec[term] = w / norm
	}
}
