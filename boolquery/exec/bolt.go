// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exec

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
)

var (
	tokenBucket = []byte("tokens")
	pageBucket  = []byte("pages")
)

// BoltTokenIndex is a TokenIndex backed by a boltdb/bolt database,
// for durable indexes (spec §4.J's index persistence requirement).
type BoltTokenIndex struct {
	db         *bolt.DB
	normalizer Normalizer
	lemmatizer Lemmatizer
}

// OpenBoltTokenIndex opens (creating if necessary) a bolt-backed
// TokenIndex at path.
func OpenBoltTokenIndex(path string) (*BoltTokenIndex, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open token index: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tokenBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create token bucket: %w", err)
	}
	return &BoltTokenIndex{db: db, normalizer: DefaultNormalizer(), lemmatizer: DefaultLemmatizer()}, nil
}

// Close releases the underlying bolt database.
func (i *BoltTokenIndex) Close() error { return i.db.Close() }

func (i *BoltTokenIndex) PageURLsByToken(token string) ([]string, error) {
	key := lemmaKey(i.normalizer, i.lemmatizer, token)
	var urls []string
	err := i.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(tokenBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &urls)
	})
	return urls, err
}

func (i *BoltTokenIndex) AddEntry(token, pageURL string) error {
	key := lemmaKey(i.normalizer, i.lemmatizer, token)
	return i.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(tokenBucket)
		raw := b.Get([]byte(key))
		var urls []string
		if raw != nil {
			if err := json.Unmarshal(raw, &urls); err != nil {
				return err
			}
		}
		for _, u := range urls {
			if u == pageURL {
				return nil
			}
		}
		urls = append(urls, pageURL)
		encoded, err := json.Marshal(urls)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), encoded)
	})
}

// BoltPageIndex is a PageIndex backed by a boltdb/bolt database.
type BoltPageIndex struct {
	db *bolt.DB
}

// OpenBoltPageIndex opens (creating if necessary) a bolt-backed
// PageIndex at path.
func OpenBoltPageIndex(path string) (*BoltPageIndex, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open page index: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(pageBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create page bucket: %w", err)
	}
	return &BoltPageIndex{db: db}, nil
}

// Close releases the underlying bolt database.
func (i *BoltPageIndex) Close() error { return i.db.Close() }

func (i *BoltPageIndex) AllPageURLs() ([]string, error) {
	var urls []string
	err := i.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(pageBucket).ForEach(func(k, _ []byte) error {
			urls = append(urls, string(k))
			return nil
		})
	})
	return urls, err
}

func (i *BoltPageIndex) FilePathForPageURL(pageURL string) (string, bool, error) {
	var path string
	var ok bool
	err := i.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(pageBucket).Get([]byte(pageURL))
		if raw != nil {
			path = string(raw)
			ok = true
		}
		return nil
	})
	return path, ok, err
}

func (i *BoltPageIndex) AddEntry(pageURL, filePath string) error {
	return i.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(pageBucket).Put([]byte(pageURL), []byte(filePath))
	})
}
