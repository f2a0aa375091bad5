package csvdb_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/csvdb"
	"github.com/hupe1980/csvdb/blobstore"
)

type User struct {
	ID        int    `csv:"id"`
	FirstName string `csv:"first_name"`
	LastName  string `csv:"last_name"`
	Age       int    `csv:"age"`
}

// Example demonstrates the four verbs against an in-memory store.
func Example() {
	ctx := context.Background()

	db := csvdb.NewWithStore(blobstore.NewMemoryStore())
	defer db.Close()

	// Insert a new user into the users collection.
	err := csvdb.Insert(ctx, db, "users", User{ID: 1, FirstName: "First", LastName: "Last", Age: 20})
	if err != nil {
		log.Fatal(err)
	}

	// Find users by filtering with a predicate.
	adults, err := csvdb.Find(ctx, db, "users", func(u User) bool { return u.Age >= 18 })
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(adults))

	// Update a user by filtering with a predicate.
	err = csvdb.Update(ctx, db, "users", User{ID: 1, FirstName: "First", LastName: "Last", Age: 21},
		func(u User) bool { return u.ID == 1 })
	if err != nil {
		log.Fatal(err)
	}

	// Delete a user by filtering with a predicate.
	err = csvdb.Delete(ctx, db, "users", func(u User) bool { return u.ID == 1 })
	if err != nil {
		log.Fatal(err)
	}

	remaining, err := csvdb.Find(ctx, db, "users", func(User) bool { return true })
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(remaining))

	// Output:
	// 1
	// 0
}

// Example_compressed wraps the local store with zstd compression.
func Example_compressed() {
	zc, err := blobstore.NewZstdCompressor()
	if err != nil {
		log.Fatal(err)
	}

	db := csvdb.NewWithStore(
		blobstore.NewCompressedStore(blobstore.NewLocalStore("./data"), zc),
		csvdb.WithExtension("csv.zst"),
	)
	defer db.Close()

	fmt.Println("database ready")
	// Output: database ready
}
