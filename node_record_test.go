package avro

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type RecordTestSuite struct {
	suite.Suite
	pair Node
}

func TestRecordTestSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}

func (s *RecordTestSuite) SetupTest() {
	n, err := Parse(map[string]any{
		"type": "record",
		"name": "Pair",
		"fields": []any{
			map[string]any{"name": "a", "type": "int"},
			map[string]any{"name": "b", "type": "string"},
		},
	})
	s.Require().NoError(err)
	s.pair = n
}

// S4 — record (§8).
func (s *RecordTestSuite) TestEncodeMatchesSpecBytes() {
	enc, err := s.pair.Encode(map[string]any{"a": int32(1), "b": "x"})
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x02, 0x02, 0x78}, enc)
}

func (s *RecordTestSuite) TestRoundTrip() {
	v := map[string]any{"a": int32(42), "b": "hello"}
	enc, err := s.pair.Encode(v)
	s.Require().NoError(err)
	dec, err := s.pair.Decode(enc)
	s.Require().NoError(err)
	s.Assert().True(cmp.Equal(v, dec))
}

// Property 5 — default substitution.
func (s *RecordTestSuite) TestDefaultSubstitution() {
	withDefault, err := Parse(map[string]any{
		"type": "record",
		"name": "WithDefault",
		"fields": []any{
			map[string]any{"name": "a", "type": "int"},
			map[string]any{"name": "b", "type": "string", "default": "fallback"},
		},
	})
	s.Require().NoError(err)

	missing, err := withDefault.Encode(map[string]any{"a": int32(7)})
	s.Require().NoError(err)

	explicit, err := withDefault.Encode(map[string]any{"a": int32(7), "b": "fallback"})
	s.Require().NoError(err)

	s.Assert().Equal(explicit, missing)
}

func (s *RecordTestSuite) TestValidateRejectsMissingFieldWithoutDefault() {
	s.Assert().False(s.pair.Validate(map[string]any{"a": int32(1)}))
}

func (s *RecordTestSuite) TestRandomRoundTrip() {
	v := s.pair.Random()
	s.Require().True(s.pair.Validate(v))
	enc, err := s.pair.Encode(v)
	s.Require().NoError(err)
	dec, err := s.pair.Decode(enc)
	s.Require().NoError(err)
	s.Assert().True(cmp.Equal(v, dec))
}
