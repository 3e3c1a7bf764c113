/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package split

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// nullToken is the literal sentinel encoding "no token" on the wire. A real
// continuation token is never this text; deserializing it yields an absent
// token, not the string itself.
const nullToken = "NULL"

// Split is an immutable descriptor of one partition of a domain: the row
// range [StartRow, EndRow) and the continuation token marking its first row.
// A nil Token means the start of the dataset. Splits are created by the
// planner and consumed by exactly one reader.
type Split struct {
	StartRow uint64
	EndRow   uint64
	Token    *string
}

// New creates a Split over [startRow, endRow) beginning at token.
func New(startRow, endRow uint64, token *string) Split {
	return Split{StartRow: startRow, EndRow: endRow, Token: token}
}

// Length returns the declared number of rows in the split.
func (s Split) Length() uint64 {
	return s.EndRow - s.StartRow
}

func (s Split) String() string {
	token := nullToken
	if s.Token != nil {
		token = *s.Token
	}
	return fmt.Sprintf("startRow=%d, endRow=%d, splitToken=%s", s.StartRow, s.EndRow, token)
}

// Write serializes the split for distribution to a worker: 8-byte big-endian
// start row, 8-byte big-endian end row, then the token as a uint16
// length-prefixed UTF-8 string with the "NULL" sentinel for no token.
func (s Split) Write(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, s.StartRow); err != nil {
		return fmt.Errorf("failed to write start row: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, s.EndRow); err != nil {
		return fmt.Errorf("failed to write end row: %w", err)
	}

	token := nullToken
	if s.Token != nil {
		token = *s.Token
	}
	if len(token) > 0xFFFF {
		return fmt.Errorf("token too long to serialize: %d bytes", len(token))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(token))); err != nil {
		return fmt.Errorf("failed to write token length: %w", err)
	}
	if _, err := io.WriteString(w, token); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Read deserializes a split from the layout produced by Write.
func Read(r io.Reader) (Split, error) {
	var s Split
	if err := binary.Read(r, binary.BigEndian, &s.StartRow); err != nil {
		return Split{}, fmt.Errorf("failed to read start row: %w", err)
	}
	if err := binary.Read(r, binary.BigEndian, &s.EndRow); err != nil {
		return Split{}, fmt.Errorf("failed to read end row: %w", err)
	}

	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return Split{}, fmt.Errorf("failed to read token length: %w", err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Split{}, fmt.Errorf("failed to read token: %w", err)
	}
	if token := string(buf); token != nullToken {
		s.Token = &token
	}
	return s, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Split) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Split) UnmarshalBinary(data []byte) error {
	parsed, err := Read(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
