package pipeline

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rishirelan/lightonml/encoder"
	"github.com/rishirelan/lightonml/opu"
	"github.com/rishirelan/lightonml/projection"
)

// projectStage adapts projection.Gaussian: Fit learns the incoming width.
type projectStage struct {
	g *projection.Gaussian
}

// Project wraps a Gaussian projector as a pipeline stage.
func Project(g *projection.Gaussian) Stage { return &projectStage{g: g} }

func (s *projectStage) Name() string { return "projection.gaussian" }

func (s *projectStage) Fit(x *mat.Dense) error {
	if x == nil {
		return ErrNilMatrix
	}
	_, d := x.Dims()

	return s.g.Fit(d)
}

func (s *projectStage) Transform(x *mat.Dense) (*mat.Dense, error) {
	return s.g.Transform(x)
}

// deviceStage adapts any opu.Device.
type deviceStage struct {
	dev opu.Device
}

// OnDevice wraps an OPU device as a pipeline stage. Simulated and real
// hardware are interchangeable here; the pipeline code cannot tell.
func OnDevice(dev opu.Device) Stage { return &deviceStage{dev: dev} }

func (s *deviceStage) Name() string { return "opu.device" }

func (s *deviceStage) Fit(x *mat.Dense) error {
	if x == nil {
		return ErrNilMatrix
	}
	_, d := x.Dims()

	return s.dev.Fit(d)
}

func (s *deviceStage) Transform(x *mat.Dense) (*mat.Dense, error) {
	return s.dev.Transform(x)
}

// encodeStage adapts encoder.Autoencoder: Fit trains on the incoming
// matrix, Transform emits the hardened bits.
type encodeStage struct {
	ae *encoder.Autoencoder
}

// Encode wraps a binary autoencoder as a pipeline stage.
func Encode(ae *encoder.Autoencoder) Stage { return &encodeStage{ae: ae} }

func (s *encodeStage) Name() string { return "encoder.autoencoder" }

func (s *encodeStage) Fit(x *mat.Dense) error {
	_, err := s.ae.Fit(x)

	return err
}

func (s *encodeStage) Transform(x *mat.Dense) (*mat.Dense, error) {
	return s.ae.Encode(x)
}

// binarizeStage thresholds entries into {0,1}; stateless, Fit is a no-op.
type binarizeStage struct {
	threshold float64
}

// Binarize wraps a fixed-threshold binarizer as a pipeline stage.
func Binarize(threshold float64) Stage { return &binarizeStage{threshold: threshold} }

func (s *binarizeStage) Name() string { return "projection.binarize" }

func (s *binarizeStage) Fit(x *mat.Dense) error {
	if x == nil {
		return ErrNilMatrix
	}

	return nil
}

func (s *binarizeStage) Transform(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}

	return projection.Binarize(x, s.threshold), nil
}
