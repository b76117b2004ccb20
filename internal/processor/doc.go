// Package processor contains the translation pipeline. It reads the source
// dictionary, flattens it into records, sends each record through the
// translator in order, folds the results back into a dictionary and writes
// the output file. This package is the coordinator between the dictionary
// and translation packages.
package processor
