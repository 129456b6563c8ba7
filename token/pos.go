package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to line and column.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) newlines() []int {
	if p.n != nil || len(p.d) == 0 {
		return p.n
	}
	p.n = []int{}
	off := 0
	for {
		i := bytes.IndexByte(p.d[off:], '\n')
		if i == -1 {
			return p.n
		}
		p.n = append(p.n, off+i)
		off += i + 1
	}
}

func (p *PosDoc) LineCol(off int) (int, int) {
	n := p.newlines()
	N := len(n)
	di := sort.Search(N, func(i int) bool {
		return n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, min(p.I, len(p.D.d))-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
