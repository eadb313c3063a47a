package dump

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/src-bin/gatewayfixtures/catalog"
	"github.com/src-bin/gatewayfixtures/cmdutil"
	"github.com/src-bin/gatewayfixtures/gateway"
	"github.com/src-bin/gatewayfixtures/legacy"
	"github.com/tidwall/gjson"
)

func dump(t *testing.T, f cmdutil.Format, gs []gateway.Generation, clobber bool, args ...string) string {
	t.Helper()
	*dirname, *format, *generations, *noClobber = t.TempDir(), f, gs, !clobber
	defer func() { *format, *generations, *noClobber = cmdutil.FormatJSON, nil, false }()
	Main(context.Background(), catalog.Load(), nil, args, nil)
	return *dirname
}

func filenames(t *testing.T, dirname string) []string {
	t.Helper()
	entries, err := os.ReadDir(dirname)
	if err != nil {
		t.Fatal(err)
	}
	var ss []string
	for _, entry := range entries {
		ss = append(ss, entry.Name())
	}
	sort.Strings(ss)
	return ss
}

func TestDumpAll(t *testing.T) {
	dirname := dump(t, cmdutil.FormatJSON, nil, true)
	cat := catalog.Load()
	var expected []string
	for _, path := range cat.Names("") {
		expected = append(expected, path+".json")
	}
	if diff := cmp.Diff(expected, filenames(t, dirname)); diff != "" {
		t.Error(diff)
	}

	b, err := os.ReadFile(filepath.Join(dirname, "http.req.v2.getWithQueryStringDuplicateKey.json"))
	if err != nil {
		t.Fatal(err)
	}
	if s := gjson.GetBytes(b, "queryStringParameters.whats").String(); s != "up,there" {
		t.Error(s)
	}
}

func TestDumpPrefixAndGeneration(t *testing.T) {
	dirname := dump(t, cmdutil.FormatYAML, []gateway.Generation{gateway.Legacy}, true, "http.legacy.req")
	var expected []string
	for _, name := range legacy.RequestNames() {
		expected = append(expected, "http.legacy.req."+name+".yaml")
	}
	if diff := cmp.Diff(expected, filenames(t, dirname)); diff != "" {
		t.Error(diff)
	}
}

func TestNoClobber(t *testing.T) {
	*dirname, *noClobber = t.TempDir(), true
	defer func() { *noClobber = false }()
	pathname := filepath.Join(*dirname, "ws.req.connect.json")
	if err := os.WriteFile(pathname, []byte("{}\n"), 0666); err != nil {
		t.Fatal(err)
	}
	Main(context.Background(), catalog.Load(), nil, []string{"ws.req"}, nil)
	b, err := os.ReadFile(pathname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "{}\n" {
		t.Errorf("%q", b)
	}
	if len(filenames(t, *dirname)) != len(catalog.Load().Names("ws.req")) {
		t.Error(filenames(t, *dirname))
	}
}
