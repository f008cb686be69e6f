package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "character not found",
			expected: "NOT_FOUND: character not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "level out of range",
			expected: "INVALID_ARGUMENT: level out of range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "123").
		WithMeta("level", 3)

	s.Assert().Equal("123", err.Meta["character_id"])
	s.Assert().Equal(3, err.Meta["level"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to get character")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to get character", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal("INTERNAL: failed to get character: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.NotFound("character missing").WithMeta("character_id", "abc")
	wrapped := errors.Wrapf(original, "failed to level up %s", "abc")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("abc", wrapped.Meta["character_id"])
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	original := errors.Internal("redis down").WithMeta("attempt", 2)
	wrapped := errors.WrapWithCode(original, errors.CodeUnavailable, "store unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal(2, wrapped.Meta["attempt"])
	s.Assert().True(errors.IsUnavailable(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "ignored"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "ignored"))
}

func (s *ErrorsTestSuite) TestConstructors() {
	testCases := []struct {
		name string
		err  *errors.Error
		code errors.Code
	}{
		{"not found", errors.NotFoundf("item %s", "x"), errors.CodeNotFound},
		{"invalid argument", errors.InvalidArgumentf("level %d", 0), errors.CodeInvalidArgument},
		{"already exists", errors.AlreadyExists("dup"), errors.CodeAlreadyExists},
		{"failed precondition", errors.FailedPreconditionf("max level %d", 20), errors.CodeFailedPrecondition},
		{"internal", errors.Internalf("boom %d", 1), errors.CodeInternal},
		{"unavailable", errors.Unavailable("later"), errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().Equal(tc.code, errors.GetCode(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.Wrap(errors.NotFound("a"), "outer")
	s.Assert().True(errors.Is(err, errors.NotFound("b")))
	s.Assert().False(errors.Is(err, errors.Internal("b")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
}

func (s *ErrorsTestSuite) TestGetMessageAndMeta() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("outer", errors.GetMessage(errors.Wrap(fmt.Errorf("inner"), "outer")))

	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.Assert().Equal("1", errors.GetMeta(errors.NotFound("x").WithMeta("id", "1"))["id"])
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeAlreadyExists, 4},
		{errors.CodeFailedPrecondition, 4},
		{errors.CodeUnavailable, 5},
		{errors.CodeCanceled, 130},
		{errors.CodeInternal, 1},
		{errors.Code("SOMETHING_ELSE"), 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
