package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moviatask/moviactl/controller"
	"github.com/moviatask/moviactl/filter"
)

var (
	searchText   string
	categoryName string
	filterExpr   string
	preset       string
	showDetails  bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List movies from the catalog",
	Long: `List the movie catalog. --search and --category filter client-side
over the fetched catalog; --filter accepts a boolean expression over
movie fields, e.g.:

  moviactl list --filter 'Rating >= 8.0 && Year > 2000'
  moviactl list --filter 'hasActor("Pacino") || inCategory("Crime")'`,
	RunE: runList,
}

// categoriesCmd lists the catalog's categories
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories present in the catalog",
	RunE:  runCategories,
}

func init() {
	listCmd.Flags().StringVarP(&searchText, "search", "s", "", "case-insensitive title substring")
	listCmd.Flags().StringVarP(&categoryName, "category", "c", filter.CategoryAll, "category filter (\"All\" disables)")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().BoolVar(&showDetails, "details", false, "show cast and ids")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalog := controller.NewCatalog(apiClient, logger)
	catalog.Load(context.Background())

	snap := catalog.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load catalog: %s", snap.Err)
	}

	catalog.SetSearch(searchText)
	catalog.SetCategory(categoryName)
	movies := catalog.FilteredMovies()

	// Expression filtering stacks on top of search/category
	if expr, err := filterExpression(); err != nil {
		return err
	} else if expr != "" {
		compiled, err := filter.NewCompiler(filter.WithCache(16)).Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		movies = compiled.Apply(movies)
	}

	fmt.Print(formatMovieList(movies, snap.Data.Liked, showDetails))
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	catalog := controller.NewCatalog(apiClient, logger)
	catalog.Load(context.Background())

	snap := catalog.Snapshot()
	if snap.Phase == controller.Failed {
		return fmt.Errorf("failed to load catalog: %s", snap.Err)
	}

	for _, c := range catalog.Categories() {
		fmt.Println(c)
	}
	return nil
}

// filterExpression resolves --filter / --preset into one expression
func filterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}
	if preset != "" {
		expr, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset not found in config: %s", preset)
		}
		return expr, nil
	}
	return filterExpr, nil
}
