// Copyright 2025 StreamNative, Inc.
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

package inspect

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/hashkit/cmd/flag"
	"github.com/streamnative/hashkit/collection"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	ErrUnknownOutput = errors.New("unknown output format")

	Cmd = newCmd()
)

type options struct {
	configFile string
	output     string
	debug      bool
	collection collection.Config
}

// Document is the machine readable result of an inspection.
type Document struct {
	Lines int              `json:"lines" yaml:"lines"`
	Map   collection.Stats `json:"map" yaml:"map"`
	Set   collection.Stats `json:"set" yaml:"set"`
}

func newCmd() *cobra.Command {
	opts := &options{collection: collection.NewConfig()}
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Count keys with a hash map and a hash set",
		Long: `Read newline separated keys from a file, or from stdin when the file is
omitted or "-". Each key is counted in a hash map and recorded in a hash set,
then the contents and the bucket statistics of both containers are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exec(cmd, args, opts)
		},
	}

	flag.ConfigFile(cmd, &opts.configFile)
	flag.Collection(cmd, &opts.collection)
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Print every bucket of the hash map")
	return cmd
}

func exec(cmd *cobra.Command, args []string, opts *options) error {
	switch opts.output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Wrapf(ErrUnknownOutput, "%q", opts.output)
	}

	conf, err := flag.LoadCollectionConfig(cmd, opts.configFile)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to open keys file")
		}
		defer f.Close()
		in = f
	}

	counts, err := collection.NewHashMapFromConfig[string, int](conf)
	if err != nil {
		return err
	}
	distinct, err := collection.NewHashSetFromConfig[string](conf)
	if err != nil {
		return err
	}

	lines := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}
		n, _ := counts.Get(key)
		counts.Put(key, n+1)
		distinct.Add(key)
		lines++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read keys")
	}

	doc := Document{
		Lines: lines,
		Map:   counts.Stats(),
		Set:   distinct.Stats(),
	}

	out := cmd.OutOrStdout()
	switch opts.output {
	case OutputJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	case OutputYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return writeText(out, counts, distinct, doc, opts.debug)
	}
}

func writeText(out io.Writer, counts *collection.HashMap[string, int], distinct *collection.HashSet[string],
	doc Document, debug bool) error {
	var sb strings.Builder
	sb.WriteString(counts.String())
	sb.WriteString("\n")
	if debug {
		sb.WriteString(counts.DebugString())
	}
	sb.WriteString(fmt.Sprintf("lines: %s\n", humanize.Comma(int64(doc.Lines))))
	sb.WriteString(fmt.Sprintf("map: %s keys, capacity %s, load factor %.2f, used buckets %s, longest chain %d, resizes %d\n",
		humanize.Comma(int64(doc.Map.Count)), humanize.Comma(int64(doc.Map.Capacity)), doc.Map.LoadFactor,
		humanize.Comma(int64(doc.Map.UsedBuckets)), doc.Map.LongestChain, doc.Map.Resizes))
	sb.WriteString(fmt.Sprintf("set: %s values, capacity %s, load factor %.2f, placement %s, longest run %d, resizes %d\n",
		humanize.Comma(int64(doc.Set.Count)), humanize.Comma(int64(doc.Set.Capacity)), doc.Set.LoadFactor,
		distinct.Placement(), doc.Set.LongestChain, doc.Set.Resizes))

	_, err := io.WriteString(out, sb.String())
	return err
}
