package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"iplook/config"
	"iplook/format"
	"iplook/lookup"
	"iplook/structs"
)

var log = logrus.New()

var (
	flagIP      = kingpin.Flag("ip", "single IP address to look up").Short('i').String()
	flagFile    = kingpin.Flag("file", "file with one IP address per line").Short('f').String()
	flagOutput  = kingpin.Flag("output", "write results to this file instead of stdout").Short('o').String()
	flagFormat  = kingpin.Flag("format", "output format").Default("json").Enum("json", "csv")
	flagToken   = kingpin.Flag("token", "ipinfo.io API token (overrides "+config.EnvToken+" and ~/"+config.FileName+")").String()
	flagTimeout = kingpin.Flag("timeout", "per-request timeout").Default("5s").Duration()
	flagRetries = kingpin.Flag("retries", "attempts per address").Default("3").Int()
	flagRDNS    = kingpin.Flag("rdns", "add reverse DNS names to the results").Bool()
	flagASN     = kingpin.Flag("asn", "add origin AS data (Team Cymru) to the results").Bool()
	flagNoColor = kingpin.Flag("no-color", "disable colored output").Bool()
	flagVerbose = kingpin.Flag("verbose", "verbose output").Short('v').Bool()
	flagQuiet   = kingpin.Flag("quiet", "suppress everything except errors").Short('q').Bool()
)

func main() {
	kingpin.CommandLine.Help = "Look up geolocation and ownership data for IP addresses via ipinfo.io."
	kingpin.CommandLine.HelpFlag.Short('h')
	kingpin.Parse()
	os.Exit(run())
}

func run() int {
	if *flagVerbose {
		log.Level = logrus.DebugLevel
	}
	if *flagQuiet {
		log.Level = logrus.ErrorLevel
	}
	if *flagNoColor {
		color.NoColor = true
	}
	if (*flagIP == "") == (*flagFile == "") {
		log.Error("need exactly one of --ip or --file")
		return 1
	}

	token, err := config.ResolveToken(*flagToken, config.DefaultFile())
	if err != nil {
		log.Error(err)
		return 1
	}

	addrs, err := gather()
	if err != nil {
		log.Error(err)
		return 1
	}

	client := lookup.New(&lookup.Config{
		Token:   token,
		Timeout: *flagTimeout,
		Retries: *flagRetries,
		RDNS:    *flagRDNS,
		ASN:     *flagASN,
		Debug:   *flagVerbose,
	})

	start := time.Now()
	results := process(client, addrs)

	if err := write(results); err != nil {
		log.Error(err)
		return 1
	}
	if failed := summarize(os.Stderr, results, time.Since(start)); failed > 0 {
		return 1
	}
	return 0
}

// process looks up every address in input order. Validation failures are
// recorded as failed results and skipped; lookup failures are recorded and
// the batch moves on.
func process(client *lookup.Client, addrs []string) []structs.Result {
	spin := startSpinner(len(addrs))
	defer stopSpinner(spin)

	// per-result terminal echo only makes sense when the formatted output
	// goes to a file; otherwise it would interleave with the stdout dump
	echo := *flagOutput != "" && !*flagQuiet

	results := make([]structs.Result, 0, len(addrs))
	for i, addr := range addrs {
		res := structs.Result{Addr: addr}
		res.Family, res.Err = lookup.ParseAddr(addr)
		if res.Err != nil {
			log.Errorf("skipping %s", res.Err)
			results = append(results, res)
			continue
		}
		progress(spin, i+1, len(addrs), addr)
		res.Record, res.Err = client.Lookup(addr)
		if res.Err != nil {
			log.Errorf("%s", res.Err)
		} else if echo {
			printRecord(os.Stdout, res.Record)
		}
		results = append(results, res)
	}
	return results
}

// gather collects the input addresses: the single -i value, or the
// non-empty, non-comment lines of the -f file.
func gather() ([]string, error) {
	if *flagIP != "" {
		return []string{strings.TrimSpace(*flagIP)}, nil
	}
	f, err := os.Open(*flagFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading input file")
	}
	defer f.Close()
	var addrs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addrs = append(addrs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input file")
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no addresses in %s", *flagFile)
	}
	return addrs, nil
}

func write(results []structs.Result) error {
	var w io.Writer = os.Stdout
	if *flagOutput != "" {
		f, err := os.Create(*flagOutput)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		w = f
	}
	var err error
	switch *flagFormat {
	case "csv":
		err = format.CSV(w, results)
	default:
		err = format.JSON(w, results)
	}
	if err != nil {
		return err
	}
	if *flagOutput != "" {
		log.Infof("results saved to %s", *flagOutput)
	}
	return nil
}
