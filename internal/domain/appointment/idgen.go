package appointment

import "sync/atomic"

// IDGenerator fornece identificadores únicos dentro de uma coleção.
type IDGenerator interface {
	NextID() int64
}

// Sequence é um contador monotônico; dois envios no mesmo milissegundo
// recebem IDs distintos.
type Sequence struct {
	last atomic.Int64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) NextID() int64 {
	return s.last.Add(1)
}
