package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/rbtree/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Log receives one entry per contender with the durations of its phases.
var Log = logrus.New()

var (
	flagN      int
	flagSeed   int64
	flagFactor uint
	flagDegree int
	flagLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "measure",
	Short: "Compare BSTree with other ordered containers",
	Long: `measure inserts a random permutation of 0..n-1 into a BSTree, google/btree, GoLLRB and the
red-black tree of gods, removes every other value, then looks up every value. It logs the time of
each phase and the height of the BSTree.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagN <= 0 {
			return errors.New("n must be positive")
		}
		if flagDegree < 2 {
			return errors.New("degree must be at least 2")
		}
		lvl, err := logrus.ParseLevel(flagLevel)
		if err != nil {
			return err
		}
		Log.SetLevel(lvl)
		measure(rand.New(rand.NewSource(flagSeed)).Perm(flagN))
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVarP(&flagN, "n", "n", 1<<16, "number of values")
	rootCmd.Flags().Int64VarP(&flagSeed, "seed", "s", 0, "seed of the random permutation")
	rootCmd.Flags().UintVarP(&flagFactor, "rebuild", "r", 2, "rebuild factor of the BSTree, 0 disables rebalancing")
	rootCmd.Flags().IntVarP(&flagDegree, "degree", "d", 32, "degree of google/btree")
	rootCmd.Flags().StringVarP(&flagLevel, "level", "l", "info", "log level")
}

// measure every contender on perm and log the results.
func measure(perm []int) {
	cs, bst := contenders()
	Log.WithFields(logrus.Fields{"n": len(perm), "seed": flagSeed}).Debug("measuring")
	for _, c := range cs {
		ins, rmv, qry := run(c, perm)
		f := logrus.Fields{"name": c.name, "insert": ins, "remove": rmv, "query": qry, "size": c.size()}
		if c.name == "bstree" {
			f["height"] = bst.Height()
		}
		Log.WithFields(f).Info("measured")
	}
}

// contender adapts an ordered int container to the three measured phases.
type contender struct {
	name   string
	insert func(int)
	remove func(int)
	has    func(int) bool
	size   func() int
}

func contenders() ([]contender, *Trees.BSTree[int]) {
	var rb Trees.Rebalancer[int] = Trees.NoRebalance[int]{}
	if flagFactor > 0 {
		rb = Trees.Rebuild[int]{Factor: flagFactor}
	}
	bst := Trees.New(rb)
	bt := btree.NewOrderedG[int](flagDegree)
	lt := llrb.New()
	rbt := redblacktree.NewWithIntComparator()
	return []contender{
		{
			name:   "bstree",
			insert: func(v int) { bst.Insert(v) },
			remove: func(v int) { bst.Remove(v) },
			has:    bst.Has,
			size:   func() int { return int(bst.Size()) },
		},
		{
			name:   "btree",
			insert: func(v int) { bt.ReplaceOrInsert(v) },
			remove: func(v int) { bt.Delete(v) },
			has:    bt.Has,
			size:   bt.Len,
		},
		{
			name:   "llrb",
			insert: func(v int) { lt.ReplaceOrInsert(llrb.Int(v)) },
			remove: func(v int) { lt.Delete(llrb.Int(v)) },
			has:    func(v int) bool { return lt.Has(llrb.Int(v)) },
			size:   lt.Len,
		},
		{
			name:   "gods",
			insert: func(v int) { rbt.Put(v, struct{}{}) },
			remove: func(v int) { rbt.Remove(v) },
			has: func(v int) bool {
				_, found := rbt.Get(v)
				return found
			},
			size: rbt.Size,
		},
	}, bst
}

// run the phases on c, returning their durations.
func run(c contender, perm []int) (ins, rmv, qry time.Duration) {
	start := time.Now()
	for _, v := range perm {
		c.insert(v)
	}
	ins = time.Since(start)
	start = time.Now()
	for i := 0; i < len(perm); i += 2 {
		c.remove(perm[i])
	}
	rmv = time.Since(start)
	start = time.Now()
	found := 0
	for _, v := range perm {
		if c.has(v) {
			found++
		}
	}
	qry = time.Since(start)
	if want := len(perm) / 2; found != want {
		Log.WithFields(logrus.Fields{"name": c.name, "found": found, "want": want}).Warn("lookups disagree with removals")
	}
	return
}
