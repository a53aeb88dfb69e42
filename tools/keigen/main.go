// keigen regenerates the label currency tables from the embedded asset list.
// Run it from the repository root:
//
//	go run ./tools/keigen -target ./label
package main

import (
	"context"
	"errors"
	"flag"
	"hash"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/keisan/internal/gen"
	"github.com/robotomize/keisan/internal/hashio"
	"github.com/robotomize/keisan/internal/logging"
)

var flagGen = flag.NewFlagSet("keigen", flag.ContinueOnError)

var (
	path     = flagGen.String("target", "./label", "path to the folder with the generated files")
	hashName = flagGen.String("hash", "md5", "hash alg for compare files, variants: md5, sha1")
)

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Keigen: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagGen.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	var hasherFunc func() hash.Hash
	switch *hashName {
	case "sha1":
		hasherFunc = hashio.SHA1()
	default:
		hasherFunc = hashio.MD5()
	}

	if err := gen.Generate(*path, hasherFunc); err != nil {
		var multiErr *multierror.Error
		if !errors.As(err, &multiErr) {
			logger.Fatalf("generate: %v", err)
		}

		for _, wrErr := range multiErr.WrappedErrors() {
			if !errors.Is(wrErr, gen.ErrHashingContentEqual) {
				logger.Fatalf("generate: %v", wrErr)
			}

			logger.Printf("warning: %v", wrErr)
		}
	}

	logger.Print("label tables are up to date")
}
