package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/openneighborhood/neighborhood/internal/localfs"
	"github.com/openneighborhood/neighborhood/internal/pathutil"
	"github.com/openneighborhood/neighborhood/internal/remote"
)

func newDrivesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drives <ip>",
		Short: "List the drives of a console",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(args[0], func(s *session) error {
				var drives []remote.Drive
				err := s.run(func(ctx context.Context, c remote.Console) error {
					var err error
					drives, err = c.GetDrives(ctx)
					return err
				})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%-10s %-30s %12s %12s\n", "DRIVE", "NAME", "FREE", "TOTAL")
				for _, d := range drives {
					fmt.Fprintf(out, "%-10s %-30s %12s %12s\n",
						d.Name, d.FriendlyName,
						remote.FormatSize(d.FreeBytesAvailable), remote.FormatSize(d.TotalBytes))
				}
				return nil
			})
		},
	}
}

func newLsCmd() *cobra.Command {
	var copyNames bool

	cmd := &cobra.Command{
		Use:   "ls <ip> <path>",
		Short: "List a directory on a console",
		Long: `List a directory on a console. Paths use the console form, for example
HDD:\Games or HDD:/Games.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseRemotePath(args[1])
			if err != nil {
				return err
			}
			return withConsole(args[0], func(s *session) error {
				var files []remote.File
				err := s.run(func(ctx context.Context, c remote.Console) error {
					var err error
					files, err = c.GetDirectoryContents(ctx, dir)
					return err
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				names := make([]string, 0, len(files))
				for _, f := range files {
					size := remote.FormatSize(f.Size)
					name := f.Name
					if f.IsDirectory {
						size = "<DIR>"
						name += remote.Separator
					}
					fmt.Fprintf(out, "%-19s %12s  %s\n", remote.FormatDate(f.ModificationDate), size, name)
					names = append(names, f.Name)
				}

				if copyNames {
					if err := clipboard.WriteAll(strings.Join(names, "\n")); err != nil {
						return fmt.Errorf("failed to copy to clipboard: %w", err)
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d names to the clipboard\n", len(names))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&copyNames, "copy", false, "Copy the entry names to the clipboard")
	return cmd
}

// lookup returns the directory entry for p. Drive roots are reported as directories.
func lookup(ctx context.Context, c remote.Console, p remote.Path) (remote.File, error) {
	if p.IsDriveRoot() {
		return remote.File{Name: p.Drive(), IsDirectory: true}, nil
	}
	files, err := c.GetDirectoryContents(ctx, p.Parent())
	if err != nil {
		return remote.File{}, err
	}
	for _, f := range files {
		if strings.EqualFold(f.Name, p.Base()) {
			return f, nil
		}
	}
	return remote.File{}, fmt.Errorf("%s: %w", p, remote.ErrNotFound)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <ip> <remote-path> [local-path]",
		Short: "Download a file or directory from a console",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseRemotePath(args[1])
			if err != nil {
				return err
			}
			var localArg string
			if len(args) == 3 {
				localArg = args[2]
			}

			return withConsole(args[0], func(s *session) error {
				var entry remote.File
				err := s.run(func(ctx context.Context, c remote.Console) error {
					var err error
					entry, err = lookup(ctx, c, src)
					return err
				})
				if err != nil {
					return err
				}

				name := entry.Name
				if src.IsDriveRoot() {
					name = strings.TrimSuffix(name, ":")
				}
				dst, err := pathutil.DownloadTarget(localArg, name)
				if err != nil {
					return err
				}

				err = s.transfer(func(ctx context.Context, c remote.Console) error {
					if entry.IsDirectory {
						return c.ReceiveDirectory(ctx, src, dst)
					}
					return c.ReceiveFile(ctx, src, dst)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Downloaded %s to %s\n", src, dst)
				return nil
			})
		},
	}
}

func newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <ip> <local-path> <remote-dir>",
		Short: "Upload a file or directory into a console directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := pathutil.ResolveAbsolutePath(args[1])
			if err != nil {
				return err
			}
			info, err := os.Stat(local)
			if err != nil {
				return err
			}
			dir, err := parseRemotePath(args[2])
			if err != nil {
				return err
			}

			return withConsole(args[0], func(s *session) error {
				var sent int
				err := s.transfer(func(ctx context.Context, c remote.Console) error {
					if !info.IsDir() {
						sent = 1
						return c.SendFile(ctx, local, dir.Join(info.Name()))
					}
					return upload(ctx, c, local, dir, &sent)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Uploaded %d file(s) to %s\n", sent, dir)
				return nil
			})
		},
	}
}

// upload copies the local tree at root into dir, creating directories as it goes.
func upload(ctx context.Context, c remote.Console, root string, dir remote.Path, sent *int) error {
	base := dir.Join(filepath.Base(root))
	return localfs.Walk(root, false, func(e localfs.FileEntry) error {
		rel, err := filepath.Rel(root, e.Path)
		if err != nil {
			return err
		}
		target := base
		if rel != "." {
			target = base.Join(strings.Split(filepath.ToSlash(rel), "/")...)
		}
		if e.IsDir {
			err := c.CreateDirectory(ctx, target)
			if errors.Is(err, remote.ErrAlreadyExists) {
				return nil
			}
			return err
		}
		if err := c.SendFile(ctx, e.Path, target); err != nil {
			return err
		}
		*sent++
		return nil
	})
}

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <ip> <path>",
		Short: "Delete a file or directory on a console",
		Long: `Delete a file or directory on a console. Directories are removed with
everything in them. Asks for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseRemotePath(args[1])
			if err != nil {
				return err
			}
			if target.IsDriveRoot() {
				return fmt.Errorf("refusing to delete drive %s", target.Drive())
			}

			return withConsole(args[0], func(s *session) error {
				var entry remote.File
				err := s.run(func(ctx context.Context, c remote.Console) error {
					var err error
					entry, err = lookup(ctx, c, target)
					return err
				})
				if err != nil {
					return err
				}

				if !yes {
					if !stdinIsTerminal() {
						return errNotInteractive
					}
					ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
						fmt.Sprintf("Are you sure you want to delete %s?", target))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
						return nil
					}
				}

				err = s.run(func(ctx context.Context, c remote.Console) error {
					return c.DeleteFile(ctx, target, entry.IsDirectory)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <ip> <path> <new-path|new-name>",
		Short: "Rename or move a file on a console",
		Long: `Rename or move a file on a console. A destination without a drive is a new
name in the same directory.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseRemotePath(args[1])
			if err != nil {
				return err
			}
			dst, err := renameTarget(src, args[2])
			if err != nil {
				return err
			}

			return withConsole(args[0], func(s *session) error {
				err := s.run(func(ctx context.Context, c remote.Console) error {
					return c.RenameFile(ctx, src, dst)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Renamed %s to %s\n", src, dst)
				return nil
			})
		},
	}
}

// renameTarget resolves the mv destination: a full path, or a bare name beside src.
func renameTarget(src remote.Path, arg string) (remote.Path, error) {
	if !strings.Contains(arg, ":") {
		name := strings.TrimSpace(arg)
		if name == "" || strings.ContainsAny(name, `\/`) {
			return remote.Path{}, fmt.Errorf("invalid name %q", arg)
		}
		return src.Parent().Join(name), nil
	}
	dst, err := parseRemotePath(arg)
	if err != nil {
		return remote.Path{}, err
	}
	if !strings.EqualFold(dst.Drive(), src.Drive()) {
		return remote.Path{}, fmt.Errorf("cannot move %s to another drive (%s)", src, dst.Drive())
	}
	return dst, nil
}

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <ip> <path>",
		Short: "Create a directory on a console",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseRemotePath(args[1])
			if err != nil {
				return err
			}
			return withConsole(args[0], func(s *session) error {
				err := s.run(func(ctx context.Context, c remote.Console) error {
					return c.CreateDirectory(ctx, dir)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", dir)
				return nil
			})
		},
	}
}

func newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <ip> <path>",
		Short: "Launch an executable (.xex) on a console",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xex, err := parseRemotePath(args[1])
			if err != nil {
				return err
			}
			if !remote.IsXexName(xex.Base()) {
				return fmt.Errorf("%s: %w", xex, remote.ErrNotXex)
			}
			return withConsole(args[0], func(s *session) error {
				err := s.run(func(ctx context.Context, c remote.Console) error {
					return c.LaunchXex(ctx, xex)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Launched %s on %s\n", xex, s.console.Name())
				return nil
			})
		},
	}
}
