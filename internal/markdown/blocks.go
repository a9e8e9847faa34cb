package markdown

import "strings"

// BlockSeparator splits markdown into blocks for partial embeds.
const BlockSeparator = "\n\n"

// TakeBlocks keeps the leading blocks of text. A positive limit keeps that
// many blocks, a negative limit drops that many from the end, and zero keeps
// everything.
func TakeBlocks(text string, limit int) string {
	if limit == 0 {
		return text
	}
	blocks := strings.Split(text, BlockSeparator)
	end := limit
	if limit < 0 {
		end = len(blocks) + limit
		if end < 0 {
			end = 0
		}
	}
	if end > len(blocks) {
		end = len(blocks)
	}
	return strings.Join(blocks[:end], BlockSeparator)
}

// ParseBlockLimit reads the leading integer of an attribute value such as
// "3" or " 2 blocks". Anything without a leading integer yields 0.
func ParseBlockLimit(value string) int {
	s := strings.TrimLeft(value, " \t\n\r")
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	n, digits := 0, 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		digits++
		if n > 1<<20 {
			break
		}
	}
	if digits == 0 {
		return 0
	}
	return sign * n
}
