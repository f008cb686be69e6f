package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("level", "must be between 1 and 20")
	ve.AddFieldError("class_id", "is required")
	ve.AddFieldError("class_id", "is unknown")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: class_id: is required, is unknown; level: must be between 1 and 20",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("class_id").
		InvalidField("hit_die", "not a die size").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Len(fields, 4)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "fighter", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("class_id", tc.value, vb)
			s.Assert().Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 20, false},
		{"below", 0, true},
		{"above", 21, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("level", tc.value, 1, 20, vb)
			s.Assert().Equal(tc.shouldErr, vb.Build() != nil)
		})
	}
}

func (s *ValidationTestSuite) TestValidateOneOf() {
	vb := errors.NewValidationBuilder()
	errors.ValidateOneOf("method", "average", []string{"average", "roll"}, vb)
	s.Assert().NoError(vb.Build())

	errors.ValidateOneOf("method", "guess", []string{"average", "roll"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of: average, roll")
}
