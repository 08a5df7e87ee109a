// Package dataset: the Ragged container.
// Ragged is the explicit sequence-of-variable-length-vectors representation
// used for per-atom quantities (forces and their references), where each
// configuration contributes 3·NumAtoms values. The Flatten/Unflatten pair is
// the documented round-trip between the ragged layout and the flat row space
// of a linear subsystem.

package dataset

// Ragged is an ordered sequence of variable-length float64 chunks, one chunk
// per configuration. The zero value is an empty container.
//
// Ragged never aliases caller slices on construction and never exposes its
// backing storage for mutation except through Chunk (documented below).
type Ragged struct {
	chunks [][]float64
}

// NewRagged builds a Ragged from the given chunks. Each chunk is copied, so
// the caller may freely reuse its buffers afterwards.
// Complexity: O(total) time and memory.
func NewRagged(chunks ...[]float64) *Ragged {
	out := make([][]float64, len(chunks))
	var i int
	for i = range chunks {
		out[i] = make([]float64, len(chunks[i]))
		copy(out[i], chunks[i])
	}

	return &Ragged{chunks: out}
}

// Len returns the number of chunks (configurations).
// Complexity: O(1).
func (r *Ragged) Len() int {
	if r == nil {
		return 0
	}

	return len(r.chunks)
}

// Total returns the summed length of all chunks, i.e. the flat row count.
// Complexity: O(Len).
func (r *Ragged) Total() int {
	if r == nil {
		return 0
	}
	var n int
	for _, c := range r.chunks {
		n += len(c)
	}

	return n
}

// Chunk returns the i-th chunk. The returned slice shares storage with the
// container; callers treat it as read-only.
// Returns ErrIndexRange when i is outside [0, Len).
func (r *Ragged) Chunk(i int) ([]float64, error) {
	if r == nil {
		return nil, ErrNilConfigSet
	}
	if i < 0 || i >= len(r.chunks) {
		return nil, ErrIndexRange
	}

	return r.chunks[i], nil
}

// ChunkLen returns the length of the i-th chunk, or 0 when i is out of range.
// Convenience for shape validation; does not allocate.
func (r *Ragged) ChunkLen(i int) int {
	if r == nil || i < 0 || i >= len(r.chunks) {
		return 0
	}

	return len(r.chunks[i])
}

// Flatten concatenates all chunks into one freshly allocated flat vector,
// preserving chunk order. The inverse operation is Unflatten.
// Complexity: O(Total) time and memory.
func (r *Ragged) Flatten() []float64 {
	flat := make([]float64, 0, r.Total())
	if r == nil {
		return flat
	}
	for _, c := range r.chunks {
		flat = append(flat, c...)
	}

	return flat
}

// Unflatten splits flat into a new Ragged shaped exactly like the receiver:
// chunk i of the result has the length of the receiver's chunk i.
// Stage 1 (Validate): len(flat) must equal Total, else ErrChunkMismatch.
// Stage 2 (Execute): copy consecutive windows of flat into fresh chunks.
// Complexity: O(Total) time and memory.
func (r *Ragged) Unflatten(flat []float64) (*Ragged, error) {
	if r == nil {
		return nil, ErrNilConfigSet
	}
	if len(flat) != r.Total() {
		return nil, ErrChunkMismatch
	}

	out := make([][]float64, len(r.chunks))
	var off int
	for i, c := range r.chunks {
		out[i] = make([]float64, len(c))
		copy(out[i], flat[off:off+len(c)])
		off += len(c)
	}

	return &Ragged{chunks: out}, nil
}

// Select returns a new Ragged holding copies of the chunks at the given
// configuration indices, in index order.
// Returns ErrIndexRange when any index is outside [0, Len).
// Complexity: O(selected total) time and memory.
func (r *Ragged) Select(indices []int) (*Ragged, error) {
	if r == nil {
		return nil, ErrNilConfigSet
	}
	out := make([][]float64, len(indices))
	for k, i := range indices {
		if i < 0 || i >= len(r.chunks) {
			return nil, ErrIndexRange
		}
		out[k] = make([]float64, len(r.chunks[i]))
		copy(out[k], r.chunks[i])
	}

	return &Ragged{chunks: out}, nil
}

// Clone returns a deep copy of the container.
// Complexity: O(Total) time and memory.
func (r *Ragged) Clone() *Ragged {
	if r == nil {
		return nil
	}

	return NewRagged(r.chunks...)
}
