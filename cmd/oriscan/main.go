// Command oriscan provides a CLI for locating candidate origin-of-replication
// regions on bacterial genomes.
//
// Usage:
//
//	oriscan [command] [options]
//
// Commands:
//
//	scan        Run the full origin scan (skew minima + motif search)
//	skew        Show the skew minimum and its positions
//	motif       Find the most frequent approximate k-mers in a window
//	rc          Print the reverse complement of a sequence
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oriscan/oriscan-go/pkg/oriscan"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "scan":
		scanCmd(os.Args[2:])
	case "skew":
		skewCmd(os.Args[2:])
	case "motif":
		motifCmd(os.Args[2:])
	case "rc":
		rcCmd(os.Args[2:])
	case "version":
		fmt.Println(oriscan.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oriscan - Origin-of-Replication Locator

Usage:
  oriscan <command> [options]

Commands:
  scan      Run the full origin scan (skew minima + motif search)
  skew      Show the skew minimum and its positions
  motif     Find the most frequent approximate k-mers in a window
  rc        Print the reverse complement of a sequence
  version   Show version information
  help      Show this help message

Use "oriscan <command> -h" for more information about a command.`)
}

// loadGenome resolves the -file/-seq pair shared by several subcommands.
func loadGenome(fs *flag.FlagSet, file, seq string) *oriscan.Sequence {
	if file == "" && seq == "" {
		fmt.Fprintln(os.Stderr, "Error: Either -file or -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	if file != "" {
		sequences, err := oriscan.ReadFASTA(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}
		if len(sequences) == 0 {
			fmt.Fprintln(os.Stderr, "No sequences found in file")
			os.Exit(1)
		}
		return sequences[0]
	}

	s, err := oriscan.NewSequence(seq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sequence: %v\n", err)
		os.Exit(1)
	}
	return s
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file holding the genome")
	seq := fs.String("seq", "", "Genome string to scan")
	windowLength := fs.Int("w", 500, "Window length around each skew minimum")
	k := fs.Int("k", 9, "Consensus k-mer length")
	maxMismatches := fs.Int("m", 1, "Maximum substitutions allowed per match")
	fs.Parse(args)

	genome := loadGenome(fs, *file, *seq)

	reports, err := oriscan.Scan(genome, oriscan.Params{
		WindowLength:  *windowLength,
		K:             *k,
		MaxMismatches: *maxMismatches,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning genome: %v\n", err)
		os.Exit(1)
	}

	if len(reports) == 0 {
		fmt.Println("No skew minima found")
		return
	}

	for _, r := range reports {
		fmt.Printf("Frequent %d-mers around skew minimum at position %d:\n", *k, r.Position+1)
		for _, kmer := range r.Motifs.TopKmers {
			fmt.Printf("  * %s [%d hits]\n", kmer, r.Motifs.TopCount)
		}
	}
}

func skewCmd(args []string) {
	fs := flag.NewFlagSet("skew", flag.ExitOnError)
	file := fs.String("file", "", "FASTA file holding the genome")
	seq := fs.String("seq", "", "Genome string to analyze")
	all := fs.Bool("all", false, "Report every global minimum, not just C-reaching ones")
	fs.Parse(args)

	genome := loadGenome(fs, *file, *seq)

	curve, err := oriscan.ComputeSkew(genome)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing skew: %v\n", err)
		os.Exit(1)
	}

	var positions []int
	if *all {
		positions = oriscan.AllSkewMinima(curve)
	} else {
		positions = oriscan.SkewMinima(genome, curve)
	}

	fmt.Printf("Genome length: %d bp\n", genome.Len())
	fmt.Printf("Skew minimum: %d\n", curve.Min())
	fmt.Printf("Minimum positions: %v\n", positions)
}

func motifCmd(args []string) {
	fs := flag.NewFlagSet("motif", flag.ExitOnError)
	windowBases := fs.String("window", "", "Window string to search")
	k := fs.Int("k", 9, "Consensus k-mer length")
	maxMismatches := fs.Int("m", 1, "Maximum substitutions allowed per match")
	fs.Parse(args)

	if *windowBases == "" {
		fmt.Fprintln(os.Stderr, "Error: -window is required")
		fs.Usage()
		os.Exit(1)
	}

	result, err := oriscan.FindMostFrequentKmers(*windowBases, *k, *maxMismatches)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding motifs: %v\n", err)
		os.Exit(1)
	}

	if result.TopCount == 0 {
		fmt.Println("No motifs found")
		return
	}

	fmt.Printf("Top %d-mers (%d hits each):\n", *k, result.TopCount)
	for _, kmer := range result.TopKmers {
		fmt.Printf("  * %s\n", kmer)
	}
}

func rcCmd(args []string) {
	fs := flag.NewFlagSet("rc", flag.ExitOnError)
	seq := fs.String("seq", "", "Sequence string")
	fs.Parse(args)

	if *seq == "" {
		fmt.Fprintln(os.Stderr, "Error: -seq is required")
		fs.Usage()
		os.Exit(1)
	}

	rc, err := oriscan.ReverseComplement(strings.ToUpper(*seq))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(rc)
}
