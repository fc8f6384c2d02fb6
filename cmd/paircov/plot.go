package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type cmdPlot struct {
	sampleFile string
	outFile    string
}

func (c *cmdPlot) run() {
	pts := plotter.XYs{}
	sampleChan := readSamples(c.sampleFile)
	for s := range sampleChan {
		pts = append(pts, plotter.XY{X: s.X, Y: s.Y})
	}

	p := plot.New()
	p.Title.Text = "paired samples"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	sc, err := plotter.NewScatter(pts)
	raiseError(err)
	p.Add(sc)

	err = p.Save(6*vg.Inch, 4*vg.Inch, c.outFile)
	raiseError(err)
}
