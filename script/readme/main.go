package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const wrapWidth = 80

// Each command's usage goes between its own pair of markers in the README.
var commands = []struct {
	name string
	path string
}{
	{"guess", "./guess"},
	{"envlookup", "./envlookup/envlookup"},
}

func usage(path string) (string, error) {
	var cmdOutput bytes.Buffer
	cmd := exec.Command(path, "--help")
	cmd.Stdout = &cmdOutput

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return wordwrap.WrapString(strings.TrimSpace(cmdOutput.String()), wrapWidth), nil
}

func replaceUsage(content, name, help string) string {
	begin := fmt.Sprintf("<!-- BEGIN USAGE %s -->", name)
	end := fmt.Sprintf("<!-- END USAGE %s -->", name)

	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(begin) + `.*` + regexp.QuoteMeta(end))
	newUsageBlock := begin + "\n```none\n" + help + "\n```\n" + end

	return re.ReplaceAllLiteralString(content, newUsageBlock)
}

func main() {
	readmeFile := "README.md"

	content, err := os.ReadFile(readmeFile)
	if err != nil {
		log.Fatalf("Failed to read %q: %v", readmeFile, err)
	}

	updatedContent := string(content)
	for _, command := range commands {
		help, err := usage(command.path)
		if err != nil {
			log.Fatalf("Failed to run %q: %v", command.path, err)
		}

		updatedContent = replaceUsage(updatedContent, command.name, help)
	}

	if err := os.WriteFile(readmeFile, []byte(updatedContent), 0644); err != nil {
		log.Fatalf("Failed to write %q: %v", readmeFile, err)
	}
}
