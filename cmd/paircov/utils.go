package main

import (
	"github.com/bmatsuo/lmdb-go/lmdb"
	"github.com/boltdb/bolt"
	"log"
	"os"
)

type KeyValue struct {
	Key, Value []byte
}

func newEnv(numDB int, sizeDB int64) *lmdb.Env {
	env, err := lmdb.NewEnv()
	raiseError(err)
	err = env.SetMaxDBs(numDB)
	raiseError(err)

	err = env.SetMapSize(sizeDB)
	raiseError(err)

	return env
}

func createReadOnlyEnv(path string) *lmdb.Env {
	env := newEnv(10, 1<<30)
	err := env.Open(path, lmdb.Readonly, 0644)
	raiseError(err)
	return env
}

func createEnv(path string) *lmdb.Env {
	env := newEnv(10, 1<<30)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			os.Mkdir(path, 0755)
		} else {
			raiseError(err)
		}
	}
	err := env.Open(path, 0, 0644)
	raiseError(err)
	return env
}

func createDBI(env *lmdb.Env, name string) error {
	fn := func(txn *lmdb.Txn) error {
		var dbi lmdb.DBI
		var err error
		var del bool = false

		if dbi, err = txn.CreateDBI(name); err != nil {
			return err
		}

		if err = txn.Drop(dbi, del); err != nil {
			return err
		}

		return nil
	}

	err := env.Update(fn)
	return err
}

func createBucket(name string) func(tx *bolt.Tx) error {
	return func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	}
}

func openFile(filename string) *os.File {
	f, err := os.Open(filename)
	raiseError(err)

	return f
}

func createFile(filename string) *os.File {
	f, err := os.Create(filename)
	raiseError(err)

	return f
}

func raiseError(err error) {
	if err != nil {
		if *debug {
			log.Panic(err)
		} else {
			log.Fatalln(err)
		}
	}
}
