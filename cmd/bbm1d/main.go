// Command bbm1d integrates the BBM-BBM dispersive shallow-water system on a
// periodic 1D grid and plots the surface elevation. Configuration comes from
// an ini file; every key has a default so the command also runs bare.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"

	"github.com/notargets/bbm1d/equations"
	"github.com/notargets/bbm1d/integrator"
	"github.com/notargets/bbm1d/mesh"
	"github.com/notargets/bbm1d/operators"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/ini.v1"
)

type config struct {
	n          int
	xmin, xmax float64
	gravity    float64
	eta0       float64
	kind       string
	order      int
	tEnd       float64
	steps      int
	logEvery   int
	humpAmp    float64
	humpSigma  float64
	shelfDepth float64
	shelfAmp   float64
	shelfSigma float64
	outputPath string
}

func loadConfig(path string) (*config, error) {
	f := ini.Empty()
	if path != "" {
		var err error
		f, err = ini.Load(path)
		if err != nil {
			return nil, err
		}
	}
	c := &config{
		n:          f.Section("grid").Key("n").MustInt(256),
		xmin:       f.Section("grid").Key("xmin").MustFloat64(-25),
		xmax:       f.Section("grid").Key("xmax").MustFloat64(25),
		gravity:    f.Section("physics").Key("gravity").MustFloat64(9.81),
		eta0:       f.Section("physics").Key("eta0").MustFloat64(0),
		kind:       f.Section("operators").Key("kind").MustString("central"),
		order:      f.Section("operators").Key("order").MustInt(4),
		tEnd:       f.Section("time").Key("t_end").MustFloat64(10),
		steps:      f.Section("time").Key("steps").MustInt(2000),
		logEvery:   f.Section("time").Key("log_every").MustInt(200),
		humpAmp:    f.Section("initial").Key("hump_amplitude").MustFloat64(0.1),
		humpSigma:  f.Section("initial").Key("hump_sigma").MustFloat64(2),
		shelfDepth: f.Section("initial").Key("shelf_depth").MustFloat64(2),
		shelfAmp:   f.Section("initial").Key("shelf_amplitude").MustFloat64(0.5),
		shelfSigma: f.Section("initial").Key("shelf_sigma").MustFloat64(5),
		outputPath: f.Section("output").Key("png").MustString("bbm1d.png"),
	}
	return c, nil
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to ini configuration file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.WithError(err).Fatal("cannot load configuration")
	}

	m, err := mesh.NewMesh1D(cfg.xmin, cfg.xmax, cfg.n)
	if err != nil {
		log.WithError(err).Fatal("invalid grid configuration")
	}

	var ops *operators.Set
	switch cfg.kind {
	case "central":
		ops, err = operators.NewCentralSet(cfg.order, m)
	case "upwind":
		ops, err = operators.NewUpwindSet(cfg.order, m)
	default:
		err = fmt.Errorf("unknown operator kind %q", cfg.kind)
	}
	if err != nil {
		log.WithError(err).Fatal("invalid operator configuration")
	}

	params := equations.Parameters{Gravity: cfg.gravity, Eta0: cfg.eta0}
	depth := func(x float64) float64 {
		r := x / cfg.shelfSigma
		return cfg.shelfDepth - cfg.shelfAmp*math.Exp(-r*r)
	}
	ic := equations.InitialConditionGaussianHump(cfg.eta0, cfg.humpAmp, 0, cfg.humpSigma, depth)

	log.WithFields(logrus.Fields{
		"mesh":  m.String(),
		"kind":  cfg.kind,
		"order": cfg.order,
	}).Info("building solver cache")
	solver, err := equations.NewBBMBBM(params, m, ops, ic)
	if err != nil {
		log.WithError(err).Fatal("solver construction failed")
	}

	q := equations.StateFromInitialCondition(ic, m, 0)
	etaInitial := append([]float64(nil), q.RawRowView(0)...)

	mass0, mom0, energy0 := invariants(params, m, q)
	log.WithFields(logrus.Fields{
		"mass":   mass0,
		"moment": mom0,
		"energy": energy0,
	}).Info("initial invariants")

	rk := integrator.NewRK4(solver.RHS, 3, m.N)
	dt := cfg.tEnd / float64(cfg.steps)
	for i := 0; i < cfg.steps; i++ {
		rk.Step(float64(i)*dt, dt, q)
		if (i+1)%cfg.logEvery == 0 || i == cfg.steps-1 {
			mass, mom, energy := invariants(params, m, q)
			log.WithFields(logrus.Fields{
				"t":            float64(i+1) * dt,
				"mass_drift":   mass - mass0,
				"moment_drift": mom - mom0,
				"energy_drift": energy - energy0,
			}).Info("step")
		}
	}

	if err := writePlot(cfg, m, etaInitial, q.RawRowView(0)); err != nil {
		log.WithError(err).Fatal("cannot write plot")
	}
	log.WithField("path", cfg.outputPath).Info("done")
}

// invariants returns the discrete mass, momentum and total energy of the
// state, integrated with the trapezoidal weight dx of the periodic grid.
func invariants(p equations.Parameters, m *mesh.Mesh1D, q *mat.Dense) (mass, momentum, energy float64) {
	var (
		eta = q.RawRowView(0)
		v   = q.RawRowView(1)
		d   = q.RawRowView(2)
		dx  = m.Dx()
	)
	for i := range eta {
		_, hv, _ := equations.PrimToCons(eta[i], v[i], d[i])
		mass += eta[i]
		momentum += hv
		energy += p.EnergyTotal(eta[i], v[i], d[i])
	}
	return mass * dx, momentum * dx, energy * dx
}

func writePlot(cfg *config, m *mesh.Mesh1D, etaInitial, etaFinal []float64) error {
	p := plot.New()
	p.Title.Text = "BBM-BBM surface elevation"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "eta"

	x := m.Coordinates()
	initial, err := plotter.NewLine(xyPoints(x, etaInitial))
	if err != nil {
		return err
	}
	initial.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	initial.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	final, err := plotter.NewLine(xyPoints(x, etaFinal))
	if err != nil {
		return err
	}
	final.Color = color.RGBA{B: 200, A: 255}

	p.Add(initial, final)
	p.Legend.Add("t = 0", initial)
	p.Legend.Add(fmt.Sprintf("t = %g", cfg.tEnd), final)

	return p.Save(8*vg.Inch, 4*vg.Inch, cfg.outputPath)
}

func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
