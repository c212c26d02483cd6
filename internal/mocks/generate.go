// Package mocks provides mock implementations of the ports used by the passkey services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	validator := mocks.NewMockKeyValidator(ctrl)
//	validator.EXPECT().Validate(gomock.Any(), "key").Return(passkey.Failed("Invalid passkey"))
package mocks

// Generate mock for KeyValidator interface from internal/ports package.
// This creates MockKeyValidator with methods for all KeyValidator interface methods: Validate
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=key_validator_mock.go github.com/trifall/link-shortener-ui/internal/ports KeyValidator

// Generate mock for Store interface from internal/ports package.
// This creates MockStore with methods for all Store interface methods: Get, Set, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=store_mock.go github.com/trifall/link-shortener-ui/internal/ports Store
