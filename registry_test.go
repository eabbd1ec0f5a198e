package avro

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestPrimitivesPreseeded() {
	r := NewRegistry()
	for _, kind := range primitiveKinds {
		s.Require().NotNil(r.Primitive(kind))
		s.Assert().Equal(kind, r.Primitive(kind).TypeName())
	}
}

func (s *RegistryTestSuite) TestUnknownPrimitiveReturnsNil() {
	r := NewRegistry()
	s.Assert().Nil(r.Primitive("nope"))
}

func (s *RegistryTestSuite) TestLookupUnregisteredReturnsNil() {
	r := NewRegistry()
	s.Assert().Nil(r.Lookup("com.example.Missing"))
}

func (s *RegistryTestSuite) TestRegisterAndNames() {
	r := NewRegistry()
	node := &fixedNode{name: "com.example.MD5", size: 16}
	r.Register("com.example.MD5", node)
	s.Assert().Same(Node(node), r.Lookup("com.example.MD5"))
	s.Assert().Contains(r.Names(), "com.example.MD5")
}
