// Command iwfg ranks the points of Pareto fronts by their exclusive
// hypervolume contribution.
//
//	iwfg bottomk -k 2 --sense min front.csv
//	iwfg contrib fronts.yaml
package main

import "os"

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
