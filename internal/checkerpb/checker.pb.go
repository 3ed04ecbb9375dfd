// Package checkerpb holds the message and service types for the checker's
// gRPC façade. protoc cannot run in this environment, so these are
// hand-maintained in the shape protoc-gen-go/protoc-gen-go-grpc would
// produce from a checker.proto describing CheckLineRequest/Response and the
// CheckerService RPC.
package checkerpb

import (
	"reflect"
	"sync"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
)

// CheckLineRequest is one line's proof context sent to the checker service:
// the premises and prior derived lines available to it, the expression
// under justification, the rule name, and the (1-based) line numbers of its
// cited dependencies.
type CheckLineRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProofSource    string  `protobuf:"bytes,1,opt,name=proof_source,json=proofSource,proto3" json:"proof_source,omitempty"`
	TargetLine     int32   `protobuf:"varint,2,opt,name=target_line,json=targetLine,proto3" json:"target_line,omitempty"`
	Rule           string  `protobuf:"bytes,3,opt,name=rule,proto3" json:"rule,omitempty"`
	Deps           []int32 `protobuf:"varint,4,rep,packed,name=deps,proto3" json:"deps,omitempty"`
	SubproofDeps   []int32 `protobuf:"varint,5,rep,packed,name=subproof_deps,json=subproofDeps,proto3" json:"subproof_deps,omitempty"`
}

func (x *CheckLineRequest) Reset()         { *x = CheckLineRequest{} }
func (x *CheckLineRequest) String() string { return protoimpl.X.MessageStringOf(x) }
func (*CheckLineRequest) ProtoMessage()    {}

func (x *CheckLineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_checker_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CheckLineRequest) GetProofSource() string {
	if x != nil {
		return x.ProofSource
	}
	return ""
}

func (x *CheckLineRequest) GetTargetLine() int32 {
	if x != nil {
		return x.TargetLine
	}
	return 0
}

func (x *CheckLineRequest) GetRule() string {
	if x != nil {
		return x.Rule
	}
	return ""
}

func (x *CheckLineRequest) GetDeps() []int32 {
	if x != nil {
		return x.Deps
	}
	return nil
}

func (x *CheckLineRequest) GetSubproofDeps() []int32 {
	if x != nil {
		return x.SubproofDeps
	}
	return nil
}

// CheckLineResponse reports whether the cited justification is valid, and
// if not, a human-readable explanation mirroring internal/rules.CheckError.
type CheckLineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Ok      bool   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *CheckLineResponse) Reset()         { *x = CheckLineResponse{} }
func (x *CheckLineResponse) String() string { return protoimpl.X.MessageStringOf(x) }
func (*CheckLineResponse) ProtoMessage()    {}

func (x *CheckLineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_checker_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CheckLineResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *CheckLineResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

var file_checker_proto_msgTypes = make([]protoimpl.MessageInfo, 2)

var file_checker_proto_goTypes = []interface{}{
	(*CheckLineRequest)(nil),
	(*CheckLineResponse)(nil),
}

var file_checker_proto_init sync.Once

// fileChecker_proto_init wires the message descriptors the way
// protoc-gen-go's generated init() does, using reflection over the Go
// struct tags above in place of a compiled FileDescriptorProto -- this
// module has no .proto file to run protoc against.
func fileChecker_proto_init() {
	file_checker_proto_init.Do(func() {
		for i, gt := range file_checker_proto_goTypes {
			file_checker_proto_msgTypes[i].GoReflectType = reflect.TypeOf(gt)
		}
	})
}

func init() {
	fileChecker_proto_init()
}
