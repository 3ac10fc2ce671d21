package patentdump

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// numberingPrefixRe accepts "12. " and "12 " style prefixes.
	numberingPrefixRe = regexp.MustCompile(`^\d+(?:\.\s|\s)`)

	// claimStartRe matches the "12. " prefix that starts a claim segment.
	claimStartRe = regexp.MustCompile(`^\d+\.\s`)

	// claimRe captures the claim number and the text after the dot.
	claimRe = regexp.MustCompile(`^(\d+)\.\s*(.*)`)
)

// IsClaimText reports whether s looks like a numbered claim, i.e. its
// normalized form starts with a number followed by ". " or " ".
func IsClaimText(s string) bool {
	return numberingPrefixRe.MatchString(Normalize(s))
}

// SplitClaims splits a block of claims text into numbered segments.
//
// A boundary sits before every whitespace character that is directly
// followed by "<number>. ", and boundaries may overlap the previous prefix.
// Each segment is normalized and kept only if it still starts with
// "<number>. ". Claim text that itself contains "<number>. " is split there
// too.
func SplitClaims(blob string) []string {
	s := " " + Normalize(blob)

	var bounds []int
	for i := 0; i+1 < len(s); i++ {
		if s[i] != ' ' || !isDigit(s[i+1]) {
			continue
		}
		if claimStartRe.MatchString(s[i+1:]) {
			bounds = append(bounds, i)
		}
	}

	var segments []string
	for j, start := range bounds {
		end := len(s)
		if j+1 < len(bounds) {
			end = bounds[j+1]
		}
		seg := Normalize(s[start:end])
		if claimStartRe.MatchString(seg) {
			segments = append(segments, seg)
		}
	}
	return segments
}

// ParseClaims turns raw claim texts into numbered claims.
//
// Items must have the form "<number>. <text>"; anything else, a zero or
// out-of-range number, or an empty text is dropped. When a number repeats,
// the first occurrence wins and later ones are discarded. The result keeps
// input order and is never nil.
func ParseClaims(items []string) []Claim {
	claims := make([]Claim, 0, len(items))
	seen := make(map[int]struct{}, len(items))

	for _, item := range items {
		m := claimRe.FindStringSubmatch(Normalize(item))
		if m == nil {
			continue
		}

		num, err := strconv.Atoi(m[1])
		if err != nil || num < 1 {
			continue
		}

		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}

		if _, ok := seen[num]; ok {
			continue
		}
		seen[num] = struct{}{}

		claims = append(claims, Claim{ClaimNumber: num, Text: text})
	}

	return claims
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
