// Package proto holds the generated messages and gRPC bindings of the
// versa.v1.Versa service defined in proto/versa/v1/versa.proto.
package proto

//go:generate sh -c "cd ../.. && buf generate"
