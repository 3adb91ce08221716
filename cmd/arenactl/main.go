// Command arenactl replays alloc/free traces against a fixed arena and
// reports the resulting heap.
package main

func main() {
	execute()
}
