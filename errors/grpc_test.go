package errors

import (
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeDiceInvalidFaces, codes.InvalidArgument},
		{CodeDiceInvalidDiceCount, codes.InvalidArgument},
		{CodeDiceInvalidAdditionalDice, codes.InvalidArgument},
		{CodeRandomInvalidBound, codes.InvalidArgument},
		{CodeDiceNoRandomSource, codes.FailedPrecondition},
		{CodeRandomSourceFailure, codes.Internal},
		{CodeRandomSeedFailure, codes.Internal},
		{CodeUnknown, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.GRPCCode(); got != tt.want {
				t.Fatalf("GRPCCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleErrorNil(t *testing.T) {
	if err := HandleError(nil, "en-US"); err != nil {
		t.Fatalf("HandleError(nil) = %v, want nil", err)
	}
}

func TestHandleErrorDomainError(t *testing.T) {
	err := WithMetadata(CodeDiceInvalidFaces, "faces count must be at least 1",
		map[string]string{"Faces": "0"})

	handled := HandleError(err, "")
	st, ok := status.FromError(handled)
	if !ok {
		t.Fatal("expected a gRPC status")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("status code = %v, want InvalidArgument", st.Code())
	}
	if st.Message() != "faces count must be at least 1" {
		t.Fatalf("status message = %q", st.Message())
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.Reason != string(CodeDiceInvalidFaces) || info.Domain != Domain {
		t.Fatalf("unexpected ErrorInfo: %+v", info)
	}
	if localized == nil || localized.Locale != "en-US" {
		t.Fatalf("unexpected LocalizedMessage: %+v", localized)
	}
	if localized.Message != "Dice must have at least one face, got 0" {
		t.Fatalf("localized message = %q", localized.Message)
	}
}

func TestHandleErrorUnknownError(t *testing.T) {
	handled := HandleError(fmt.Errorf("boom"), "en-US")
	st, ok := status.FromError(handled)
	if !ok {
		t.Fatal("expected a gRPC status")
	}
	if st.Code() != codes.Internal {
		t.Fatalf("status code = %v, want Internal", st.Code())
	}
}
