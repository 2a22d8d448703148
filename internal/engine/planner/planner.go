// Package planner turns discovered package files into install instructions.
package planner

import (
	"context"
	"runtime"

	"go.trai.ch/dxpatch/internal/core/boarddoc"
	"go.trai.ch/dxpatch/internal/core/domain"
	"go.trai.ch/dxpatch/internal/core/ports"
	"go.trai.ch/dxpatch/internal/engine/classifier"
	"go.trai.ch/dxpatch/internal/engine/decoder"
	"go.trai.ch/dxpatch/internal/engine/synth"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Request is the input of one planning run.
type Request struct {
	Files    []domain.PackageFile
	Template *boarddoc.Document
	// Toolchain is the root of the installed toolchain.
	Toolchain string
	// GCCVersion pins the compiler version receiving device-specs fragments.
	GCCVersion string
}

// Planner composes classification, decoding and synthesis.
type Planner struct {
	lister  ports.CompilerVersionLister
	decoder *decoder.Decoder
	synth   *synth.Synthesizer
	logger  ports.Logger
}

// New creates a Planner.
func New(
	lister ports.CompilerVersionLister,
	dec *decoder.Decoder,
	syn *synth.Synthesizer,
	logger ports.Logger,
) *Planner {
	return &Planner{
		lister:  lister,
		decoder: dec,
		synth:   syn,
		logger:  logger,
	}
}

// Plan returns one instruction per file, in input order. Header files whose stem decodes
// carry a board descriptor; when several files decode to the same device, only the last one
// keeps its descriptor.
func (p *Planner) Plan(ctx context.Context, req Request) ([]domain.InstallInstruction, error) {
	if err := synth.ValidateTemplate(req.Template); err != nil {
		return nil, err
	}

	c := classifier.New(req.Toolchain, req.GCCVersion, p.lister)
	instructions := make([]domain.InstallInstruction, len(req.Files))
	errs := make([]error, len(req.Files))

	// Every file is planned even after a failure, so the reported error is always
	// the one of the earliest failing file.
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, file := range req.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			instructions[i], errs[i] = p.planFile(c, file, req.Template)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	dedupeBoards(instructions)
	return instructions, nil
}

func (p *Planner) planFile(
	c *classifier.Classifier,
	file domain.PackageFile,
	tmpl *boarddoc.Document,
) (domain.InstallInstruction, error) {
	class, err := c.Classify(file)
	if err != nil {
		return domain.InstallInstruction{}, err
	}

	dest, err := c.Destination(file, class)
	if err != nil {
		return domain.InstallInstruction{}, zerr.With(err, "path", file.Path)
	}

	instr := domain.InstallInstruction{
		Source:      file,
		Class:       class,
		Destination: dest,
	}
	if class != domain.ClassHeader {
		return instr, nil
	}

	attrs, ok := p.decoder.Decode(file.Stem)
	if !ok {
		p.logger.Debug("no device encoded in header " + file.Name)
		return instr, nil
	}

	board, err := p.synth.Synthesize(attrs, tmpl)
	if err != nil {
		return domain.InstallInstruction{}, zerr.With(err, "device", attrs.Name())
	}
	instr.Board = &board
	return instr, nil
}

// dedupeBoards keeps only the last descriptor per device name.
func dedupeBoards(instructions []domain.InstallInstruction) {
	last := make(map[string]int)
	for i := range instructions {
		board := instructions[i].Board
		if board == nil {
			continue
		}
		if prev, ok := last[board.Name]; ok {
			instructions[prev].Board = nil
		}
		last[board.Name] = i
	}
}
