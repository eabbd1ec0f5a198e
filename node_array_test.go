package avro

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type ContainerTestSuite struct {
	suite.Suite
}

func TestContainerTestSuite(t *testing.T) {
	suite.Run(t, new(ContainerTestSuite))
}

// S5 — array of long (§8).
func (s *ContainerTestSuite) TestArrayEncodeMatchesSpecBytes() {
	n, err := Parse(map[string]any{"type": "array", "items": "long"})
	s.Require().NoError(err)
	enc, err := n.Encode([]any{int64(10), int64(-1)})
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x04, 0x14, 0x01, 0x00}, enc)
}

func (s *ContainerTestSuite) TestArrayRandomRoundTrip() {
	n, err := Parse(map[string]any{"type": "array", "items": "string"})
	s.Require().NoError(err)
	for i := 0; i < 10; i++ {
		v := n.Random()
		s.Require().True(n.Validate(v))
		enc, err := n.Encode(v)
		s.Require().NoError(err)
		dec, err := n.Decode(enc)
		s.Require().NoError(err)
		s.Assert().True(cmp.Equal(v, dec))
	}
}

func (s *ContainerTestSuite) TestMapRandomRoundTrip() {
	n, err := Parse(map[string]any{"type": "map", "values": "int"})
	s.Require().NoError(err)
	for i := 0; i < 10; i++ {
		v := n.Random()
		s.Require().True(n.Validate(v))
		enc, err := n.Encode(v)
		s.Require().NoError(err)
		dec, err := n.Decode(enc)
		s.Require().NoError(err)
		s.Assert().True(cmp.Equal(v, dec))
	}
}

// S6 — enum (§8).
func (s *ContainerTestSuite) TestEnumEncodeDecodeAndInvalid() {
	n, err := Parse(map[string]any{
		"type":    "enum",
		"name":    "E",
		"symbols": []any{"A", "B", "C"},
	})
	s.Require().NoError(err)

	enc, err := n.Encode("B")
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x02}, enc)

	dec, err := n.Decode([]byte{0x04})
	s.Require().NoError(err)
	s.Assert().Equal("C", dec)

	_, err = n.Encode("Z")
	s.Require().Error(err)
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
}

func (s *ContainerTestSuite) TestFixedRoundTrip() {
	n, err := Parse(map[string]any{
		"type": "fixed",
		"name": "MD5",
		"size": float64(16),
	})
	s.Require().NoError(err)
	v := n.Random()
	enc, err := n.Encode(v)
	s.Require().NoError(err)
	s.Assert().Len(enc, 16)
	dec, err := n.Decode(enc)
	s.Require().NoError(err)
	s.Assert().Equal(v, dec)
}

// Property 6 — unsafe bypass.
func (s *ContainerTestSuite) TestUnsafeBypassesValidation() {
	n, err := Parse("int")
	s.Require().NoError(err)

	// Without Unsafe, an invalid value is rejected before any bytes are produced.
	_, err = n.Encode("not an int")
	s.Require().Error(err)
	var ve *ValidationError
	s.Require().True(errors.As(err, &ve))

	// With Unsafe, the same value is not rejected up front.
	_, err = n.Encode("not an int", WithUnsafe())
	s.Require().NoError(err)
}
