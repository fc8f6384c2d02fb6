package main

import (
	"github.com/SWW13/average"
	"github.com/boltdb/bolt"
	"gopkg.in/vmihailenco/msgpack.v2"
	"io"
	"log"
)

type cmdScan struct {
	sampleFile string
	dbfile     string

	db *bolt.DB
}

func (c *cmdScan) run() {
	c.openDB()
	defer c.db.Close()

	sampleChan := readSamples(c.sampleFile)
	covMap := accumulate(sampleChan)
	c.db.Update(createBucket("cov"))
	c.load(covMap)

	// check number of written records.
	c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("cov"))
		s := b.Stats()
		log.Printf("Wrote %d records\n", s.KeyN)
		return nil
	})
}

func (c *cmdScan) openDB() {
	db, err := bolt.Open(c.dbfile, 0600, nil)
	raiseError(err)
	c.db = db
}

// readSamples reads a sample file,
// and sends the samples into a channel.
func readSamples(filename string) chan average.Sample {
	ch := make(chan average.Sample, 10)
	go func() {
		defer close(ch)
		f := openFile(filename)
		defer f.Close()

		r := average.NewReader(f)
		for {
			s, err := r.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				if *debug {
					log.Panicln(err)
				} else {
					log.Fatalln(err)
				}
			}
			ch <- s
		}
	}()
	return ch
}

// defaultSeries keys samples without a series name; bolt and lmdb reject
// empty keys.
const defaultSeries = "default"

// accumulate folds samples into one covariance estimator per series.
func accumulate(in chan average.Sample) map[string]*average.Covariance {
	m := make(map[string]*average.Covariance)
	for s := range in {
		series := s.Series
		if series == "" {
			series = defaultSeries
		}
		cov, found := m[series]
		if !found {
			cov = average.NewCovariance()
			m[series] = cov
		}
		cov.Add(s.X, s.Y)
	}
	return m
}

func (c *cmdScan) load(m map[string]*average.Covariance) {
	fn := func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte("cov"))
		for series, cov := range m {
			value, err := msgpack.Marshal(cov.Snapshot())
			if err != nil {
				return err
			}
			if err := b.Put([]byte(series), value); err != nil {
				return err
			}
		}
		return nil
	}

	err := c.db.Update(fn)
	raiseError(err)
}
