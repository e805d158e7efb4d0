package main

import (
	"encoding/json"
	"fmt"

	"github.com/uniparse/go-uniparse/ir"
	"github.com/uniparse/go-uniparse/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// merge applies a second script as a merge patch: entries present in
// the patch overwrite the document, and the merge runs over the plain
// data projection of both trees. The merged render sorts block entries
// by key.
func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires one argument, a patch script", cli.ErrUsage)
	}
	var patchNode *ir.Node
	if cfg.String {
		patchNode, err = parse.Parse([]byte(args[0]))
		if err != nil {
			return fmt.Errorf("error parsing patch: %w", err)
		}
	} else {
		patchNode, err = getScript(cc, args[0])
		if err != nil {
			return fmt.Errorf("error parsing patch %s: %w", args[0], err)
		}
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	root, err := getScript(cc, file)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	docJSON, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("error projecting %s: %w", file, err)
	}
	patchJSON, err := json.Marshal(patchNode)
	if err != nil {
		return fmt.Errorf("error projecting patch: %w", err)
	}
	mergedJSON, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return fmt.Errorf("error merging: %w", err)
	}
	merged := &ir.Node{}
	if err := json.Unmarshal(mergedJSON, merged); err != nil {
		return fmt.Errorf("error rebuilding merged tree: %w", err)
	}
	return writeResult(cfg.MainConfig, cc, file, cfg.Write, merged)
}
