package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeEmptyInput,
				Message: "Passkey is required",
			},
			want: "Passkey is required",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeTransport,
				Message: "validate passkey",
				Cause:   errors.New("connection refused"),
			},
			want: "validate passkey: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Transport(cause, "wrapped error")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		is   func(error) bool
	}{
		{name: "empty input", err: EmptyInput("m"), code: ErrCodeEmptyInput, is: IsEmptyInput},
		{name: "unsafe input", err: UnsafeInput("m"), code: ErrCodeUnsafeInput, is: IsUnsafeInput},
		{name: "transport", err: Transport(errors.New("x"), "m"), code: ErrCodeTransport, is: IsTransport},
		{name: "protocol", err: Protocol("m"), code: ErrCodeProtocol, is: IsProtocol},
		{name: "contract", err: Contract("identifier", "m"), code: ErrCodeContract, is: IsContract},
		{name: "not found", err: NotFound("m"), code: ErrCodeNotFound, is: IsNotFound},
		{name: "not found formatted", err: NotFoundf("%s", "m"), code: ErrCodeNotFound, is: IsNotFound},
		{name: "internal", err: Internal("m"), code: ErrCodeInternal, is: IsInternal},
		{name: "internal formatted", err: Internalf("%d", 1), code: ErrCodeInternal, is: IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if !tt.is(tt.err) {
				t.Errorf("predicate did not match %v", tt.err)
			}
		})
	}
}

func TestIsInput(t *testing.T) {
	if !IsInput(EmptyInput("a")) || !IsInput(UnsafeInput("b")) {
		t.Fatal("input errors should satisfy IsInput")
	}
	if IsInput(Protocol("c")) {
		t.Fatal("protocol error should not satisfy IsInput")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "m") != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	cause := errors.New("boom")
	err := Wrapf(cause, ErrCodeTimeout, "op %s", "get")
	if err.Message != "op get" || !IsTimeout(err) || !errors.Is(err, cause) {
		t.Fatalf("unexpected wrapped error: %+v", err)
	}
	if IsCanceled(err) {
		t.Fatal("timeout should not be canceled")
	}
}

func TestGetCodeAndField(t *testing.T) {
	if GetCode(errors.New("plain")) != "" {
		t.Error("GetCode(plain) should be empty")
	}
	if GetField(errors.New("plain")) != "" {
		t.Error("GetField(plain) should be empty")
	}
	err := Contract("identifier", "Input must be a non-empty string")
	if GetCode(err) != ErrCodeContract || GetField(err) != "identifier" {
		t.Errorf("unexpected code/field: %v %v", GetCode(err), GetField(err))
	}
}
