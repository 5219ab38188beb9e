// Package Input parses the key stream the command loads: a count N followed by N integer keys,
// separated by any white space. Anything after the N-th key is ignored.
package Input

import (
	"bufio"
	"io"
	"strconv"

	"github.com/ansel1/merry"
)

var (
	ErrNoCount = merry.New("input: no key count")
	ErrShort   = merry.New("input: fewer keys than the count")
)

// Feed reads the count and then calls insert for each key in input order. Returns the number of keys fed.
func Feed(r io.Reader, insert func(k int)) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, merry.Prepend(err, "input: read count")
		}
		return 0, ErrNoCount.Here()
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, merry.Prependf(err, "input: bad count %q", sc.Text())
	}
	if n < 0 {
		return 0, merry.Errorf("input: negative count %d", n)
	}
	for i := range n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return i, merry.Prependf(err, "input: read key %d", i)
			}
			return i, ErrShort.Appendf("got %d of %d", i, n)
		}
		k, err := strconv.Atoi(sc.Text())
		if err != nil {
			return i, merry.Prependf(err, "input: bad key %d %q", i, sc.Text())
		}
		insert(k)
	}
	return n, nil
}

// ReadKeys collects the keys of r in input order.
func ReadKeys(r io.Reader) ([]int, error) {
	var ks []int
	_, err := Feed(r, func(k int) {
		ks = append(ks, k)
	})
	return ks, err
}
