// Command aris-checkd exposes the core checker as a CheckerService gRPC
// server, so an editor integration can validate one proof line out of
// process instead of linking the checker in directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strings"

	"github.com/your_username/arischeck/internal/checkerpb"
	"github.com/your_username/arischeck/internal/proof"
	"github.com/your_username/arischeck/internal/rules"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	addr = flag.String("addr", ":9091", "listen address")
)

// server implements checkerpb.CheckerServiceServer against the core
// rules.Check dispatcher.
type server struct {
	checkerpb.UnimplementedCheckerServiceServer
	logger *log.Logger
}

func (s *server) CheckLine(ctx context.Context, req *checkerpb.CheckLineRequest) (*checkerpb.CheckLineResponse, error) {
	p, err := proof.LoadText(strings.NewReader(req.GetProofSource()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid proof source: %v", err)
	}

	line := proof.LineRef(req.GetTargetLine() - 1)
	concl, ok := p.LookupExpr(line)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "target line %d does not exist", req.GetTargetLine())
	}
	sp, _ := p.LineSubproof(line)

	just, _ := p.LookupJustification(line)
	// A request may supply an alternate justification to try against the
	// same proof context, rather than only re-checking what's already
	// written -- useful for an editor offering "would this rule work here".
	if req.GetRule() != "" {
		just.Rule = req.GetRule()
		just.Deps = toLineRefs(req.GetDeps())
		just.SubDeps = nil
	}

	ctxVal := &rules.Context{
		Proof:      p,
		Line:       line,
		Conclusion: concl,
		Subproof:   sp,
		Deps:       just.Deps,
		SubDeps:    just.SubDeps,
	}

	if err := rules.Check(just.Rule, ctxVal); err != nil {
		return &checkerpb.CheckLineResponse{Ok: false, Message: err.Error()}, nil
	}
	return &checkerpb.CheckLineResponse{Ok: true}, nil
}

func toLineRefs(ns []int32) []proof.LineRef {
	out := make([]proof.LineRef, len(ns))
	for i, n := range ns {
		out[i] = proof.LineRef(n - 1)
	}
	return out
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "", log.LstdFlags)

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatalf("failed to listen on %s: %v", *addr, err)
	}

	grpcServer := grpc.NewServer()
	checkerpb.RegisterCheckerServiceServer(grpcServer, &server{logger: logger})

	logger.Println(fmt.Sprintf("aris-checkd listening on %s", *addr))
	if err := grpcServer.Serve(lis); err != nil {
		logger.Fatalf("serve failed: %v", err)
	}
}
