package tinymt64

import (
	"fmt"

	"github.com/renproject/surge"
)

// State serialisation. The two status words plus the three parameters fully
// determine the rest of the sequence, so a marshalled Rng restores to the
// exact sequence position it was taken at. Use surge.ToBinary and
// surge.FromBinary for whole-value round trips.

var (
	_ surge.Marshaler   = (*Rng)(nil)
	_ surge.Unmarshaler = (*Rng)(nil)
)

// SizeHint implements surge.SizeHinter.
func (rng *Rng) SizeHint() int {
	return surge.SizeHintU64 + // status0
		surge.SizeHintU64 + // status1
		surge.SizeHintU32 + // mat1
		surge.SizeHintU32 + // mat2
		surge.SizeHintU64 // tmat
}

// Marshal implements surge.Marshaler.
func (rng *Rng) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU64(rng.status0, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling status0: %v", err)
	}
	buf, rem, err = surge.MarshalU64(rng.status1, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling status1: %v", err)
	}
	buf, rem, err = surge.MarshalU32(rng.mat1, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling mat1: %v", err)
	}
	buf, rem, err = surge.MarshalU32(rng.mat2, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling mat2: %v", err)
	}
	buf, rem, err = surge.MarshalU64(rng.tmat, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("marshaling tmat: %v", err)
	}

	return buf, rem, nil
}

// Unmarshal implements surge.Unmarshaler.
func (rng *Rng) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.UnmarshalU64(&rng.status0, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling status0: %v", err)
	}
	buf, rem, err = surge.UnmarshalU64(&rng.status1, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling status1: %v", err)
	}
	buf, rem, err = surge.UnmarshalU32(&rng.mat1, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling mat1: %v", err)
	}
	buf, rem, err = surge.UnmarshalU32(&rng.mat2, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling mat2: %v", err)
	}
	buf, rem, err = surge.UnmarshalU64(&rng.tmat, buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("unmarshaling tmat: %v", err)
	}

	return buf, rem, nil
}
