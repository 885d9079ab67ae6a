// Package address shortens Korean street addresses into schedule titles.
package address

import (
	"regexp"
	"strings"
)

var (
	complexPattern = regexp.MustCompile(
		`([가-힣A-Za-z0-9]*(?:아파트|APT|apt|Apt|빌라|맨션|타운|오피스텔|팰리스|캐슬|자이|푸르지오|래미안|힐스테이트|아이파크|더샵|e편한세상))` +
			`(?:\s*(\d+)\s*동)?(?:\s*(\d+)\s*호)?`,
	)
	complexNumbersPattern = regexp.MustCompile(`^\s*(\d+)(?:\s*-\s*(\d+))?`)
	lotPattern            = regexp.MustCompile(`([가-힣]+(?:동|리|가))\s+(\d+(?:-\d+)?)(?:\s*번지)?`)
)

// Abbreviate returns a short label for an address.
//
// Order of attempts: apartment or complex name with "building-unit",
// then neighborhood with lot number, then the last three tokens.
func Abbreviate(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}

	if m := complexPattern.FindStringSubmatchIndex(addr); m != nil {
		name := addr[m[2]:m[3]]
		building, unit := group(addr, m, 2), group(addr, m, 3)
		if building == "" && unit == "" {
			// "래미안 101-1203" style without 동/호 markers
			if n := complexNumbersPattern.FindStringSubmatch(addr[m[1]:]); n != nil {
				building, unit = n[1], n[2]
			}
		}
		return name + suffix(building, unit)
	}

	if m := lotPattern.FindStringSubmatch(addr); m != nil {
		return m[1] + " " + m[2]
	}

	tokens := strings.Fields(addr)
	if len(tokens) <= 2 {
		return strings.Join(tokens, " ")
	}
	return strings.Join(tokens[len(tokens)-3:], " ")
}

func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

func suffix(building, unit string) string {
	switch {
	case building != "" && unit != "":
		return " " + building + "-" + unit
	case building != "":
		return " " + building + "동"
	case unit != "":
		return " " + unit + "호"
	}
	return ""
}
