package main

import (
	"fmt"
	"github.com/SWW13/average"
	"github.com/bmatsuo/lmdb-go/lmdb"
	"github.com/montanaflynn/stats"
	"gopkg.in/vmihailenco/msgpack.v2"
	"log"
	"math"
)

type cmdReport struct {
	dbPath string
	prefix string
}

// CovRes is one stored estimator with its series name.
type CovRes struct {
	Series   string
	Snapshot average.Snapshot
}

func (c *cmdReport) run() {
	env := createReadOnlyEnv(c.dbPath)
	defer env.Close()

	covChan := getAllCov(env, "cov")

	w := createFile(c.prefix + ".cov.csv")
	defer w.Close()
	w.WriteString("series,n,mean_x,mean_y,var_x,var_y,cov,corr\n")

	ns := []float64{}
	covs := []float64{}
	for cr := range covChan {
		cov := average.FromSnapshot(cr.Snapshot)
		vx := cov.SampleVarianceX()
		vy := cov.SampleVarianceY()
		corr := math.NaN()
		if vx > 0 && vy > 0 {
			corr = cov.SampleCovariance() / math.Sqrt(vx*vy)
		}
		w.WriteString(fmt.Sprintf("%s,%d,%g,%g,%g,%g,%g,%g\n",
			cr.Series, cov.Len(), cov.MeanX(), cov.MeanY(),
			vx, vy, cov.SampleCovariance(), corr))

		ns = append(ns, float64(cov.Len()))
		covs = append(covs, cov.SampleCovariance())
	}

	if len(ns) > 0 {
		nMedian, _ := stats.Median(ns)
		covMean, _ := stats.Mean(covs)
		log.Printf("%d series, median n = %g, mean covariance = %g\n",
			len(ns), nMedian, covMean)
	}
}

// getAllCov iterates all stored snapshots,
// and outputs a channel of CovRes.
func getAllCov(env *lmdb.Env, dbname string) chan CovRes {
	ch := make(chan CovRes)
	fn := func(txn *lmdb.Txn) error {
		dbi, err := txn.OpenDBI(dbname, 0)
		if err != nil {
			return err
		}

		cur, err := txn.OpenCursor(dbi)
		if err != nil {
			return err
		}
		defer cur.Close()

		for {
			k, v, err := cur.Get(nil, nil, lmdb.Next)
			if lmdb.IsNotFound(err) {
				return nil
			} else if err != nil {
				return err
			}

			s := average.Snapshot{}
			if err := msgpack.Unmarshal(v, &s); err != nil {
				return err
			}

			ch <- CovRes{Series: string(k), Snapshot: s}
		}
	}

	go func() {
		defer close(ch)
		err := env.View(fn)
		if err != nil {
			log.Panicln(err)
		}
	}()
	return ch
}
