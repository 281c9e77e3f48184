package validate_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookaloo/pkg/validate"
)

type visitorReq struct {
	Identifier string  `json:"identifier" validate:"required,max=6"`
	Email      string  `json:"email" validate:"required,email"`
	Condition  *string `json:"condition" validate:"omitempty,oneof='Very Good' Good Acceptable Poor"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	poor, bad := "Poor", "Broken"
	tests := []struct {
		name string
		req  visitorReq
		want validate.Errors
	}{
		{
			name: "ok",
			req:  visitorReq{Identifier: "V00001", Email: "a@b.io", Condition: &poor},
		},
		{
			name: "required",
			req:  visitorReq{},
			want: validate.Errors{
				"identifier": {"This field is required."},
				"email":      {"This field is required."},
			},
		},
		{
			name: "too long, bad email, bad choice",
			req:  visitorReq{Identifier: "V000001", Email: "nope", Condition: &bad},
			want: validate.Errors{
				"identifier": {"Ensure this field has no more than 6 characters."},
				"email":      {"Enter a valid email address."},
				"condition":  {`"Broken" is not a valid choice.`},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validate.NewCustomValidator().Validate(tt.req)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			var got validate.Errors
			require.ErrorAs(t, err, &got)
			require.Equal(t, tt.want, got)
		})
	}
}

type day struct{ unix int64 }

type editionReq struct {
	Published day `json:"published" validate:"required"`
}

func TestCustomValidator_WithCustomType(t *testing.T) {
	t.Parallel()
	v := validate.NewCustomValidator(validate.WithCustomType(func(field reflect.Value) interface{} {
		if d := field.Interface().(day); d.unix != 0 {
			return d.unix
		}
		return nil
	}, day{}))

	require.NoError(t, v.Validate(editionReq{Published: day{unix: 1}}))

	var got validate.Errors
	require.ErrorAs(t, v.Validate(editionReq{}), &got)
	require.Equal(t, validate.Errors{"published": {"This field is required."}}, got)
}
