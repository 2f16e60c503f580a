package changes

import "testing"

func TestCountFunctions(t *testing.T) {
	lines := []string{
		"+++ b/app.py",
		"+def handle_login(request):",
		"+    return render(request)",
		"+func (s *Server) Start(ctx context.Context) error {",
		"+func helper() {",
		"+function renderPage(props) {",
		"+const fetchUser = async (id) => {",
		"+public static String formatName(String raw) {",
		"-def removed_function(x):",
		" def context_line(y):",
		"+just an added line",
	}
	counts := countFunctions(lines)
	if counts["python"] != 1 {
		t.Fatalf("expected 1 python function, got %d", counts["python"])
	}
	if counts["go"] != 2 {
		t.Fatalf("expected 2 go functions, got %d", counts["go"])
	}
	if counts["javascript"] != 2 {
		t.Fatalf("expected 2 javascript functions, got %d", counts["javascript"])
	}
	if counts["java"] != 1 {
		t.Fatalf("expected 1 java function, got %d", counts["java"])
	}
}

func TestCountFunctions_NoMatches(t *testing.T) {
	counts := countFunctions([]string{"+plain line", "-removed", "@@ -1 +1 @@", ""})
	if counts != nil {
		t.Fatalf("expected nil counts, got %+v", counts)
	}
}
