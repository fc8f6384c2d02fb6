package main

import (
	"github.com/alecthomas/kingpin/v2"
	"os"
	"runtime"
)

var (
	app   = kingpin.New("paircov", "A command-line application for streaming pairwise statistics.")
	debug = app.Flag("debug", "Enable debug mode.").Bool()
	ncpu  = app.Flag("ncpu", "number of CPUs for using.").Default("0").Int()

	simApp    = app.Command("sim", "generate synthetic paired samples.")
	simOut    = simApp.Arg("out_file", "sample out file.").Required().String()
	simNum    = simApp.Flag("num", "number of samples per series.").Default("10000").Int()
	simSeries = simApp.Flag("series", "number of series.").Default("1").Int()
	simMeanX  = simApp.Flag("mean_x", "mean of x.").Default("0").Float64()
	simStdevX = simApp.Flag("stdev_x", "standard deviation of x.").Default("1").Float64()
	simMeanY  = simApp.Flag("mean_y", "mean of y.").Default("0").Float64()
	simStdevY = simApp.Flag("stdev_y", "standard deviation of y.").Default("1").Float64()
	simRho    = simApp.Flag("rho", "target correlation of x and y.").Default("0").Float64()
	simSeed   = simApp.Flag("seed", "random seed.").Default("1").Int64()

	scanApp  = app.Command("scan", "scan a sample file into a results db.")
	scanFile = scanApp.Arg("sample_file", "sample file.").Required().String()
	scanOut  = scanApp.Arg("results_db_path", "results db path.").Required().String()

	mergeApp  = app.Command("merge", "merge multiple results db.")
	mergeList = mergeApp.Arg("db_list", "results db list file.").Required().String()
	mergeOut  = mergeApp.Arg("out", "merged db path.").Required().String()

	reportApp    = app.Command("report", "report merged db statistics.")
	reportDb     = reportApp.Arg("merged_db_path", "merged db path.").Required().String()
	reportPrefix = reportApp.Flag("prefix", "prefix").Required().String()

	plotApp  = app.Command("plot", "scatter plot of a sample file.")
	plotFile = plotApp.Arg("sample_file", "sample file.").Required().String()
	plotOut  = plotApp.Arg("out_file", "plot out file (png or pdf).").Required().String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	runtime.GOMAXPROCS(*ncpu)

	switch command {
	case simApp.FullCommand():
		simcmd := cmdSim{
			outFile: *simOut,
			num:     *simNum,
			series:  *simSeries,
			meanX:   *simMeanX,
			stdevX:  *simStdevX,
			meanY:   *simMeanY,
			stdevY:  *simStdevY,
			rho:     *simRho,
			seed:    *simSeed,
		}
		simcmd.run()
	case scanApp.FullCommand():
		scancmd := cmdScan{
			sampleFile: *scanFile,
			dbfile:     *scanOut,
		}
		scancmd.run()
		break
	case mergeApp.FullCommand():
		mergecmd := cmdMerge{
			dbListFile: *mergeList,
			dbOut:      *mergeOut,
		}
		mergecmd.run()
		break
	case reportApp.FullCommand():
		reportcmd := cmdReport{
			dbPath: *reportDb,
			prefix: *reportPrefix,
		}
		reportcmd.run()
		break
	case plotApp.FullCommand():
		plotcmd := cmdPlot{
			sampleFile: *plotFile,
			outFile:    *plotOut,
		}
		plotcmd.run()
	}
}
