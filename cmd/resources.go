package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"jsonplaceholder/core/api"
	"jsonplaceholder/core/app"
	"jsonplaceholder/core/reconcile"
	"jsonplaceholder/feature/albums"
	"jsonplaceholder/feature/posts"
	"jsonplaceholder/feature/users"

	"github.com/spf13/cobra"
)

// resource describes one collection for the CLI.
type resource[ID comparable, T reconcile.Entity[ID]] struct {
	name    string
	newT    func() T
	service func(*repositories) api.Service[ID, T]
	// draft registers extra create flags and returns a builder that reports
	// whether those flags were used.
	draft func(cmd *cobra.Command) func() (T, bool)
}

func init() {
	RootCmd.AddCommand(
		newResourceCmd(resource[int64, *posts.Post]{
			name:    posts.Path,
			newT:    func() *posts.Post { return &posts.Post{} },
			service: func(r *repositories) api.Service[int64, *posts.Post] { return r.Posts },
			draft: func(cmd *cobra.Command) func() (*posts.Post, bool) {
				var n posts.NewPost
				cmd.Flags().StringVar(&n.Title, "title", "", "Title of the new post")
				cmd.Flags().StringVar(&n.Body, "body", "", "Body of the new post")
				return func() (*posts.Post, bool) {
					if n.Title == "" && n.Body == "" {
						return nil, false
					}
					return n.ToPost(), true
				}
			},
		}),
		newResourceCmd(resource[int64, *users.User]{
			name:    users.Path,
			newT:    func() *users.User { return &users.User{} },
			service: func(r *repositories) api.Service[int64, *users.User] { return r.Users },
		}),
		newResourceCmd(resource[int64, *albums.Album]{
			name:    albums.Path,
			newT:    func() *albums.Album { return &albums.Album{} },
			service: func(r *repositories) api.Service[int64, *albums.Album] { return r.Albums },
		}),
	)
}

func newResourceCmd[ID comparable, T reconcile.Entity[ID]](res resource[ID, T]) *cobra.Command {
	root := &cobra.Command{
		Use:   res.name,
		Short: fmt.Sprintf("Read and modify %s", res.name),
	}

	var watchList bool
	list := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List cached %s, fetching them when the cache is empty", res.name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepositories(cmd, func(ctx context.Context, r *repositories) error {
				return printStream(ctx, cmd, "list", watchList, res.service(r).ReadList(ctx))
			})
		},
	}
	list.Flags().BoolVarP(&watchList, "watch", "w", false, "Keep printing every cache change until interrupted")

	var watchOne bool
	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one record, refreshed from the network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := reconcile.ParseID[ID](args[0])
			if err != nil {
				return err
			}
			return withRepositories(cmd, func(ctx context.Context, r *repositories) error {
				return printStream(ctx, cmd, "get", watchOne, res.service(r).Read(ctx, id))
			})
		},
	}
	get.Flags().BoolVarP(&watchOne, "watch", "w", false, "Keep printing every cache change until interrupted")

	var createInput input
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a record on the server and cache it",
		Args:  cobra.NoArgs,
	}
	createInput.register(create)
	var draft func() (T, bool)
	if res.draft != nil {
		draft = res.draft(create)
	}
	create.RunE = func(cmd *cobra.Command, args []string) error {
		var entity T
		var ok bool
		if draft != nil {
			entity, ok = draft()
		}
		if !ok {
			var err error
			if entity, err = decodeInput(cmd, createInput, res.newT); err != nil {
				return err
			}
		}
		return withRepositories(cmd, func(ctx context.Context, r *repositories) error {
			return printStream(ctx, cmd, "create", false, res.service(r).Create(ctx, entity))
		})
	}

	var updateInput input
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a record on the server and in the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := reconcile.ParseID[ID](args[0])
			if err != nil {
				return err
			}
			entity, err := decodeInput(cmd, updateInput, res.newT)
			if err != nil {
				return err
			}
			entity.SetID(id)
			return withRepositories(cmd, func(ctx context.Context, r *repositories) error {
				return printStream(ctx, cmd, "update", false, res.service(r).Update(ctx, id, entity))
			})
		},
	}
	updateInput.register(update)

	var yes bool
	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a record on the server and from the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := reconcile.ParseID[ID](args[0])
			if err != nil {
				return err
			}
			if !yes && !confirm(cmd, fmt.Sprintf("Delete %s %v?", res.name, id)) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			entity := res.newT()
			entity.SetID(id)
			return withRepositories(cmd, func(ctx context.Context, r *repositories) error {
				return printStream(ctx, cmd, "delete", false, res.service(r).Delete(ctx, entity))
			})
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "Auto-confirm (non-interactive)")

	root.AddCommand(list, get, create, update, del)
	return root
}

// input is a JSON document given inline or from a file.
type input struct {
	data string
	file string
}

func (in *input) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.data, "data", "d", "", "JSON document")
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "File holding the JSON document, - for stdin")
}

func decodeInput[T any](cmd *cobra.Command, in input, newT func() T) (T, error) {
	entity := newT()

	var raw []byte
	switch {
	case in.data != "" && in.file != "":
		return entity, errors.New("use either --data or --file, not both")
	case in.data != "":
		raw = []byte(in.data)
	case in.file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return entity, fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = b
	case in.file != "":
		b, err := os.ReadFile(in.file)
		if err != nil {
			return entity, fmt.Errorf("failed to read input file: %w", err)
		}
		raw = b
	default:
		return entity, errors.New("a JSON document is required (--data or --file)")
	}

	if err := json.Unmarshal(raw, entity); err != nil {
		return entity, fmt.Errorf("invalid JSON document: %w", err)
	}
	return entity, nil
}

func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// withRepositories runs fn with a context cancelled on interrupt.
func withRepositories(cmd *cobra.Command, fn func(ctx context.Context, r *repositories) error) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		repos, err := openRepositories(a)
		if err != nil {
			return err
		}
		return fn(ctx, repos)
	})
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

// printStream prints the terminal envelope of s, or every envelope when
// watching. An error envelope fails the command after it is printed.
func printStream[V any](ctx context.Context, cmd *cobra.Command, op string, watch bool, s *reconcile.Stream[V]) error {
	defer s.Close()

	p := newPrinter(cmd.OutOrStdout(), outputFormat)
	defer p.Close()

	if watch {
		for r := range s.C() {
			if err := p.Print(r); err != nil {
				return err
			}
		}
		return nil
	}

	r, err := s.Terminal(ctx)
	if err != nil {
		return fmt.Errorf("%s did not finish: %w", op, err)
	}
	if err := p.Print(r); err != nil {
		return err
	}
	if r.Status == reconcile.StatusError {
		return fmt.Errorf("%s failed: %s", op, r.Message)
	}
	return nil
}
