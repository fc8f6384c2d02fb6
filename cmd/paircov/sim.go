package main

import (
	"bufio"
	"fmt"
	"github.com/SWW13/average"
	"log"
	"math"
	"math/rand"
)

type cmdSim struct {
	outFile string
	num     int
	series  int
	meanX   float64
	stdevX  float64
	meanY   float64
	stdevY  float64
	rho     float64
	seed    int64
}

func (c *cmdSim) run() {
	f := createFile(c.outFile)
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()

	r := rand.New(rand.NewSource(c.seed))
	e := math.Sqrt(1 - c.rho*c.rho)
	for i := 0; i < c.series; i++ {
		name := ""
		if c.series > 1 {
			name = fmt.Sprintf("s%d", i)
		}
		for j := 0; j < c.num; j++ {
			z1 := r.NormFloat64()
			z2 := r.NormFloat64()
			s := average.Sample{
				Series: name,
				X:      c.meanX + c.stdevX*z1,
				Y:      c.meanY + c.stdevY*(c.rho*z1+e*z2),
			}
			w.WriteString(s.String() + "\n")
		}
	}

	log.Printf("Wrote %d samples\n", c.num*c.series)
}
