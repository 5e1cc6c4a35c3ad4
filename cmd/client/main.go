package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

// Default server base URL; can override with CPC_SERVER env var or --server flag.
var serverBaseURL = "http://localhost:8080"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	if env := os.Getenv("CPC_SERVER"); env != "" {
		serverBaseURL = env
	}
	root := &cobra.Command{
		Use:           "client",
		Short:         "Command line client for the career portal server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverBaseURL, "server", serverBaseURL, "portal server base URL")
	root.AddCommand(signupCmd(), loginCmd(), newsletterCmd(), blogCmd(), usersCmd())
	return root
}

func client() *portalClient { return newPortalClient(serverBaseURL) }

func printResult(cmd *cobra.Command, res *submitResult) {
	n := res.Notification
	if !n.IsOpen {
		fmt.Fprintln(cmd.OutOrStdout(), res.Result)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", n.Kind, n.Title, n.Message)
}

func signupCmd() *cobra.Command {
	var first, last, email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().submit("signup", map[string]any{
				"firstName":       first,
				"lastName":        last,
				"email":           email,
				"password":        password,
				"confirmPassword": password,
				"terms":           true,
			})
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "first name")
	cmd.Flags().StringVar(&last, "last", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().submit("login", map[string]string{"email": email, "password": password})
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newsletterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "newsletter <email>",
		Short: "Subscribe to the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client().submit("newsletter", map[string]string{"email": args[0]})
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}
}

func blogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "blog", Short: "Browse the blog"}

	var search, category string
	posts := &cobra.Command{
		Use:   "posts",
		Short: "List posts, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("q", search)
			q.Set("category", category)
			var out struct {
				Posts []struct {
					ID       int    `json:"id"`
					Title    string `json:"title"`
					Category string `json:"category"`
				} `json:"posts"`
			}
			if err := client().do(http.MethodGet, "/blog/posts?"+q.Encode(), nil, &out); err != nil {
				return err
			}
			for _, p := range out.Posts {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-18s %s\n", p.ID, p.Category, p.Title)
			}
			return nil
		},
	}
	posts.Flags().StringVarP(&search, "query", "q", "", "search text")
	posts.Flags().StringVar(&category, "category", "", "category name")

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List categories with post counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cats []struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			}
			if err := client().do(http.MethodGet, "/blog/categories", nil, &cats); err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %d\n", c.Name, c.Count)
			}
			return nil
		},
	}

	cmd.AddCommand(posts, categories)
	return cmd
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Administer registered users (server must enable admin)"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List registered users",
			RunE: func(cmd *cobra.Command, args []string) error {
				var users []map[string]any
				if err := client().do(http.MethodGet, "/admin/users", nil, &users); err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(users)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every registered user",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := client().do(http.MethodDelete, "/admin/users", nil, nil); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "all users cleared")
				return nil
			},
		},
	)
	return cmd
}
