package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Frewacom/FARBS-Firefox/internal/cache"
)

var (
	// cacheCmd represents the cache command
	cacheCmd = &cobra.Command{
		Use:   "cache",
		Short: "Inspect the colorscheme cache",
	}

	cacheListCmd = &cobra.Command{
		Use:   "list",
		Short: "List cached colorschemes",
		RunE:  runCacheList,
	}

	cacheShowCmd = &cobra.Command{
		Use:   "show <hash>",
		Short: "Print a cached colorscheme as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runCacheShow,
	}

	cachePruneCmd = &cobra.Command{
		Use:   "prune",
		Short: "Remove all cached colorschemes",
		RunE:  runCachePrune,
	}
)

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheShowCmd)
	cacheCmd.AddCommand(cachePruneCmd)
}

func openStore() (*cache.Store, error) {
	dir, err := cache.DefaultDir()
	if err != nil {
		return nil, err
	}
	return cache.New(dir, logger)
}

func runCacheList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	hashes, err := store.List()
	if err != nil {
		return err
	}
	if len(hashes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "cache is empty")
		return nil
	}
	for _, hash := range hashes {
		fmt.Fprintln(cmd.OutOrStdout(), hash)
	}
	return nil
}

func runCacheShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cs, found, err := store.Get(args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no cached colorscheme for hash %s", args[0])
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cs)
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	removed, err := store.Prune()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached colorscheme(s)\n", removed)
	return nil
}
