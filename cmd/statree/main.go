// Command statree loads a count N followed by N integer keys from stdin into an order statistics
// tree, then reports its shape. It can erase a prefix of the keys, check the tree and dump it as DOT.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ansel1/merry"
	"github.com/g-m-twostay/rbstat/Dot"
	"github.com/g-m-twostay/rbstat/Input"
	"github.com/g-m-twostay/rbstat/Trees"
	log "github.com/sirupsen/logrus"
)

type config struct {
	dot     string
	verify  bool
	erase   int
	verbose bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := flag.NewFlagSet("statree", flag.ContinueOnError)
	fs.StringVar(&c.dot, "dot", "", "write the tree as a Graphviz digraph to this file")
	fs.BoolVar(&c.verify, "verify", false, "check the tree invariants after loading")
	fs.IntVar(&c.erase, "erase", 0, "erase the first n keys read after loading them all")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.erase < 0 {
		return c, merry.Errorf("statree: -erase must not be negative, got %d", c.erase)
	}
	return c, nil
}

// run loads r into a tree according to c. The tree is returned for the caller's report.
func run(c config, r io.Reader) (*Trees.Tree[int, uint32], error) {
	ks, err := Input.ReadKeys(r)
	if err != nil {
		return nil, err
	}
	tree := Trees.New[int, uint32](uint32(len(ks)))
	for _, k := range ks {
		tree.Insert(k)
	}
	log.WithFields(log.Fields{"keys": len(ks), "size": tree.Size()}).Debug("loaded")
	if c.erase > len(ks) {
		c.erase = len(ks)
	}
	for _, k := range ks[:c.erase] {
		tree.Erase(tree.Find(k))
	}
	if c.erase > 0 {
		log.WithFields(log.Fields{"erased": c.erase, "size": tree.Size()}).Debug("erased")
	}
	if c.verify && !tree.Verify() {
		return tree, merry.New("statree: tree invariants are broken")
	}
	if c.dot != "" {
		f, err := os.Create(c.dot)
		if err != nil {
			return tree, merry.Prepend(err, "statree: create dot file")
		}
		err = Dot.Write[int, uint32](f, tree)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = merry.Prepend(cerr, "statree: close dot file")
		}
		if err != nil {
			return tree, err
		}
		log.WithField("path", c.dot).Debug("dumped")
	}
	return tree, nil
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	c, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
	if c.verbose {
		log.SetLevel(log.DebugLevel)
	}
	tree, err := run(c, os.Stdin)
	if err != nil {
		log.Debug(merry.Details(err))
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"size":         tree.Size(),
		"height":       tree.Height(),
		"black_height": tree.BlackHeight(),
	}).Info("tree ready")
	if mn, ok := tree.Minimum(); ok {
		mx, _ := tree.Maximum()
		fmt.Printf("size %d min %d max %d median %d\n", tree.Size(), mn, mx, tree.SelectByRank(tree.Size()/2))
	} else {
		fmt.Println("size 0")
	}
}
