package main

import (
	"bufio"
	"github.com/SWW13/average"
	"github.com/bmatsuo/lmdb-go/lmdb"
	"github.com/boltdb/bolt"
	"gopkg.in/vmihailenco/msgpack.v2"
	"io"
	"log"
	"os"
	"strings"
)

type cmdMerge struct {
	dbListFile string
	dbOut      string
}

func (c *cmdMerge) run() {
	merged := combine(c.readAllCov())

	env := createEnv(c.dbOut)
	defer env.Close()
	raiseError(createDBI(env, "cov"))

	fn := func(txn *lmdb.Txn) error {
		dbi, err := txn.OpenDBI("cov", 0)
		if err != nil {
			return err
		}
		for series, cov := range merged {
			value, err := msgpack.Marshal(cov.Snapshot())
			if err != nil {
				return err
			}
			if err := txn.Put(dbi, []byte(series), value, 0); err != nil {
				return err
			}
		}
		return nil
	}
	raiseError(env.Update(fn))

	log.Printf("Merged %d series\n", len(merged))
}

// readList reads the list of results db paths, one per line.
func (c *cmdMerge) readList() []string {
	f, err := os.Open(c.dbListFile)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	list := []string{}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			if *debug {
				log.Println(err)
			} else {
				log.Fatalln(err)
			}
		}
		l := strings.TrimSpace(line)
		if l != "" {
			list = append(list, l)
		}
	}

	return list
}

// readAllCov streams every stored snapshot out of every listed results db.
func (c *cmdMerge) readAllCov() chan KeyValue {
	kvChan := make(chan KeyValue)
	go func() {
		defer close(kvChan)
		paths := c.readList()
		for _, path := range paths {
			db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true})
			raiseError(err)

			fn := func(tx *bolt.Tx) error {
				b := tx.Bucket([]byte("cov"))
				if b == nil {
					return nil
				}
				return b.ForEach(func(k, v []byte) error {
					key := make([]byte, len(k))
					copy(key, k)
					value := make([]byte, len(v))
					copy(value, v)
					kvChan <- KeyValue{Key: key, Value: value}
					return nil
				})
			}
			raiseError(db.View(fn))
			db.Close()
		}
	}()

	return kvChan
}

// combine folds snapshots of the same series into one estimator.
func combine(kvChan chan KeyValue) map[string]*average.Covariance {
	m := make(map[string]*average.Covariance)
	for kv := range kvChan {
		s := average.Snapshot{}
		if err := msgpack.Unmarshal(kv.Value, &s); err != nil {
			log.Panicln(err)
		}

		series := string(kv.Key)
		cov, found := m[series]
		if !found {
			m[series] = average.FromSnapshot(s)
		} else {
			cov.Append(average.FromSnapshot(s))
		}
	}
	return m
}
