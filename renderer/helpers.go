package renderer

import (
	"bytes"
	"io"
	"strconv"

	"github.com/etnz/troop"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// count renders a package count, blank for zero so tables stay readable.
func count(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// signed renders a difference with its sign.
func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// varieties renders a variety breakdown on one line: "Thin Mints 3, Samoas 1".
func varieties(v troop.Varieties) string {
	var b bytes.Buffer
	for _, variety := range v.Sorted() {
		if v[variety] == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(variety))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v[variety]))
	}
	return b.String()
}
