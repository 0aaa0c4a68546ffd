package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ToolsetsSuite struct {
	suite.Suite
}

func (s *ToolsetsSuite) TestNewToolCallResult() {
	s.Run("sets content and nil error", func() {
		result := NewToolCallResult("output text", nil)
		s.Equal("output text", result.Content)
		s.False(result.IsError)
		s.Nil(result.Error)
	})
	s.Run("sets error", func() {
		result := NewToolCallResult("", errors.New("boom"))
		s.EqualError(result.Error, "boom")
	})
}

func (s *ToolsetsSuite) TestNewToolCallErrorResult() {
	result := NewToolCallErrorResult(`{"error":"not found"}`)
	s.True(result.IsError)
	s.Nil(result.Error)
	s.Equal(`{"error":"not found"}`, result.Content)
}

func (s *ToolsetsSuite) TestToRawMessage() {
	s.Nil(ToRawMessage(nil))
	s.Equal(`"all"`, string(ToRawMessage("all")))
	s.Equal(`false`, string(ToRawMessage(false)))
}

func TestToolsets(t *testing.T) {
	suite.Run(t, new(ToolsetsSuite))
}
