// gen_vm_expects writes an expectVM* func for every expect* method of
// vmTestCase, so that expectations may be passed around as values.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalln("usage: gen_vm_expects SOURCE DEST")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := generate(ctx, flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatalln(err)
	}
}

// generate pipes the wrappers for src through goimports into dest.
func generate(ctx context.Context, src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	eg, ctx := errgroup.WithContext(ctx)
	pr, pw := io.Pipe()

	eg.Go(func() error {
		imports := exec.CommandContext(ctx, "goimports")
		imports.Stdin = pr
		imports.Stdout = out
		imports.Stderr = os.Stderr
		if err := imports.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		err := writeExpects(ctx, pw, in, src, dest)
		pw.CloseWithError(err)
		return err
	})

	return eg.Wait()
}

const expectsHeader = `package main

// @generated from %[1]v

//go:generate go run scripts/gen_vm_expects.go -- %[1]v %[2]v
`

const expectWrapper = `
func expectVM%[1]v(%[2]v) func(vmTestCase) vmTestCase {
	return func(vmt vmTestCase) vmTestCase {
		return vmt.expect%[1]v(%[3]v)
	}
}
`

var expectMethod = regexp.MustCompile(`^func \(vmt vmTestCase\) expect(\w+)\((.*?)\) vmTestCase`)

func writeExpects(ctx context.Context, w io.Writer, r io.Reader, src, dest string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, expectsHeader, src, dest)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if match := expectMethod.FindStringSubmatch(sc.Text()); match != nil {
			fmt.Fprintf(bw, expectWrapper, match[1], match[2], callArgs(match[2]))
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// callArgs turns a parameter list like "a int, bs ...string" into the
// matching call arguments "a, bs...".
func callArgs(params string) string {
	if strings.TrimSpace(params) == "" {
		return ""
	}
	var args []string
	for _, param := range strings.Split(params, ",") {
		fields := strings.Fields(param)
		arg := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}
	return strings.Join(args, ", ")
}
