package service

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"log/slog"

	"foldertree/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/crypto/blake2b"
)

// Sentinel errors for the service layer.
var (
	ErrNoTree = errors.New("no tree loaded")
)

// Rendering is the printed structure together with its entity tag.
type Rendering struct {
	Body []byte
	ETag string
}

// TreeService prints a fixed tree for the HTTP layer.
type TreeService struct {
	tree    *core.Filetree
	printer core.Printer
	renders prometheus.Counter
}

// NewTreeService creates a tree service. The render counter is registered
// with reg.
func NewTreeService(tree *core.Filetree, printer core.Printer, reg prometheus.Registerer) *TreeService {
	return &TreeService{
		tree:    tree,
		printer: printer,
		renders: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "foldertree_renders_total",
			Help: "Number of times the tree structure was printed.",
		}),
	}
}

// Render prints the tree with the configured printer. The ETag is a quoted
// BLAKE2b-256 digest of the body, so identical trees share a tag.
func (s *TreeService) Render(ctx context.Context) (*Rendering, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.tree == nil || s.tree.Root == nil {
		return nil, ErrNoTree
	}

	var buf bytes.Buffer
	s.tree.Print(&buf, s.printer)
	s.renders.Inc()

	sum := blake2b.Sum256(buf.Bytes())
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`

	slog.Debug("tree rendered", "bytes", buf.Len(), "etag", etag)

	return &Rendering{
		Body: buf.Bytes(),
		ETag: etag,
	}, nil
}

// Stats returns the shape of the tree.
func (s *TreeService) Stats(ctx context.Context) (*core.TreeStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.tree == nil || s.tree.Root == nil {
		return nil, ErrNoTree
	}

	stats := s.tree.Stats()
	return &stats, nil
}
