// Command statesearch runs the search strategies on the city-blocks
// transport problem and prints one report per strategy.
//
//	statesearch run --blocks 40
//	statesearch run --blocks 10 --algorithms ucs,astar --heuristic admissible --format yaml
//	statesearch run --config search.yaml --metrics
package main

func main() {
	Execute()
}
