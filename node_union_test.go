package avro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UnionTestSuite struct {
	suite.Suite
}

func TestUnionTestSuite(t *testing.T) {
	suite.Run(t, new(UnionTestSuite))
}

// S3 — wrapped union (§8).
func (s *UnionTestSuite) TestWrappedEncodeMatchesSpecBytes() {
	n, err := Parse([]any{"null", "string"})
	s.Require().NoError(err)

	encNull, err := n.Encode(nil)
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x00}, encNull)

	encStr, err := n.Encode(map[string]any{"string": "a"})
	s.Require().NoError(err)
	s.Assert().Equal([]byte{0x02, 0x02, 0x61}, encStr)
}

func (s *UnionTestSuite) TestWrappedRoundTrip() {
	n, err := Parse([]any{"null", "string"})
	s.Require().NoError(err)

	dec, err := n.Decode([]byte{0x00})
	s.Require().NoError(err)
	s.Assert().Nil(dec)

	dec, err = n.Decode([]byte{0x02, 0x02, 0x61})
	s.Require().NoError(err)
	s.Assert().Equal(map[string]any{"string": "a"}, dec)
}

func (s *UnionTestSuite) TestUnwrappedValuesAreBare() {
	n, err := Parse([]any{"null", "string"}, WithUnwrapUnions())
	s.Require().NoError(err)

	enc, err := n.Encode("a")
	s.Require().NoError(err)
	dec, err := n.Decode(enc)
	s.Require().NoError(err)
	s.Assert().Equal("a", dec)
}

func (s *UnionTestSuite) TestUnwrappedDuplicateBranchRejected() {
	n, err := Parse([]any{"string", "string"}, WithUnwrapUnions())
	s.Require().Error(err) // duplicate discriminator still rejected even unwrapped
	s.Require().Nil(n)
}

func (s *UnionTestSuite) TestNoBranchMatchesFails() {
	n, err := Parse([]any{"int"}, WithUnwrapUnions())
	s.Require().NoError(err)
	_, err = n.Encode("not an int")
	s.Require().Error(err)
}

func (s *UnionTestSuite) TestWrappedNoSuchBranchIsEncodeError() {
	n, err := Parse([]any{"int", "string"})
	s.Require().NoError(err)

	_, err = n.Encode(map[string]any{"boolean": true}, WithUnsafe())
	s.Require().Error(err)
	var ee *EncodeError
	s.Require().True(errors.As(err, &ee))
	s.Assert().ErrorIs(err, ErrNoSuchBranch)
}
