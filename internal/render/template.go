package render

import "html/template"

// indexTemplate is parsed once; the section define recurses for nested
// subsections.
var indexTemplate = template.Must(template.New("index").Parse(indexHTMLTemplate))

const indexHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.PageTitle}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            background: #f5f5f5;
        }

        header {
            background: linear-gradient(135deg, #ba0c2f 0%, #8b0000 100%);
            color: white;
            padding: 2rem 0;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
            padding: 0 2rem;
        }

        h1 {
            font-size: 2.5rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
        }

        .subtitle {
            font-size: 1.1rem;
            opacity: 0.9;
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1.5rem;
            margin: 2rem 0;
        }

        .stat-card {
            background: white;
            padding: 1.5rem;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
            text-align: center;
        }

        .stat-number {
            font-size: 2.5rem;
            font-weight: 700;
            color: #ba0c2f;
        }

        .stat-label {
            font-size: 0.9rem;
            color: #666;
            margin-top: 0.5rem;
        }

        .site-section {
            background: white;
            margin: 2rem 0;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
            overflow: hidden;
        }

        .site-header {
            background: #333;
            color: white;
            padding: 1.5rem;
            cursor: pointer;
            display: flex;
            justify-content: space-between;
            align-items: center;
            transition: background 0.3s;
        }

        .site-header:hover {
            background: #444;
        }

        .site-header h2 {
            font-size: 1.5rem;
            font-weight: 600;
        }

        .site-meta {
            font-size: 0.9rem;
            opacity: 0.8;
        }

        .toggle-icon {
            font-size: 1.5rem;
            transition: transform 0.3s;
        }

        .toggle-icon.expanded {
            transform: rotate(180deg);
        }

        .site-content {
            display: none;
            padding: 1.5rem;
        }

        .site-content.expanded {
            display: block;
        }

        .subsection {
            margin: 1rem 0;
            border-left: 3px solid #ba0c2f;
            padding-left: 1rem;
        }

        .subsection-header {
            font-weight: 600;
            color: #ba0c2f;
            cursor: pointer;
            padding: 0.5rem 0;
            display: flex;
            align-items: center;
            gap: 0.5rem;
        }

        .subsection-header:hover {
            color: #8b0000;
        }

        .subsection-content {
            display: none;
            margin-top: 0.5rem;
        }

        .subsection-content.expanded {
            display: block;
        }

        .page-list {
            list-style: none;
            margin: 0.5rem 0;
        }

        .page-item {
            padding: 0.75rem;
            margin: 0.5rem 0;
            background: #f9f9f9;
            border-radius: 4px;
            transition: background 0.2s;
        }

        .page-item:hover {
            background: #f0f0f0;
        }

        .page-title {
            font-weight: 600;
            color: #333;
            margin-bottom: 0.25rem;
        }

        .page-url {
            font-size: 0.85rem;
            color: #0066cc;
            word-break: break-all;
            text-decoration: none;
        }

        .page-url:hover {
            text-decoration: underline;
        }

        .page-meta {
            font-size: 0.8rem;
            color: #666;
            margin-top: 0.25rem;
        }

        .search-box {
            margin: 2rem 0;
            padding: 1rem;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 8px rgba(0,0,0,0.1);
        }

        .search-box input {
            width: 100%;
            padding: 1rem;
            font-size: 1rem;
            border: 2px solid #ddd;
            border-radius: 4px;
            transition: border-color 0.3s;
        }

        .search-box input:focus {
            outline: none;
            border-color: #ba0c2f;
        }

        footer {
            text-align: center;
            padding: 2rem;
            color: #666;
            margin-top: 3rem;
        }

        .badge {
            display: inline-block;
            padding: 0.25rem 0.75rem;
            background: #ba0c2f;
            color: white;
            border-radius: 12px;
            font-size: 0.75rem;
            font-weight: 600;
            margin-left: 0.5rem;
        }

        .expand-all {
            background: #ba0c2f;
            color: white;
            border: none;
            padding: 0.75rem 1.5rem;
            border-radius: 4px;
            cursor: pointer;
            font-size: 1rem;
            margin: 1rem 0;
            transition: background 0.3s;
        }

        .expand-all:hover {
            background: #8b0000;
        }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>{{.HeaderTitle}}</h1>
            <p class="subtitle">{{.Subtitle}}</p>
        </div>
    </header>

    <div class="container">
        <div class="stats">
            <div class="stat-card">
                <div class="stat-number">{{.TotalSites}}</div>
                <div class="stat-label">Total Sites Crawled</div>
            </div>
            <div class="stat-card">
                <div class="stat-number">{{.TotalPages}}</div>
                <div class="stat-label">Total Pages Indexed</div>
            </div>
            <div class="stat-card">
                <div class="stat-number">{{.Generated}}</div>
                <div class="stat-label">Last Updated</div>
            </div>
        </div>

        <div class="search-box">
            <input type="text" id="searchInput" placeholder="Search pages by title or URL...">
        </div>

        <button class="expand-all" onclick="toggleAll()">Expand All Sites</button>

        <div id="sitesContainer">
{{range .Sites}}
            <div class="site-section" data-site="{{.Key}}">
                <div class="site-header" onclick="toggleSite('{{.Key}}')">
                    <div>
                        <h2>{{.DisplayName}}<span class="badge">{{.PageCount}} pages</span></h2>
                        <div class="site-meta">
                            Base URL: {{.BaseURL}} | Crawled: {{.CrawlDate}}
                        </div>
                    </div>
                    <span class="toggle-icon">▼</span>
                </div>
                <div class="site-content" id="content-{{.Key}}">
{{range .Blocks}}{{if .Pages}}{{template "pagelist" .Pages}}{{end}}{{range .Sections}}{{template "section" .}}{{end}}{{end}}
                </div>
            </div>
{{end}}
        </div>
    </div>

    <footer>
{{range .FooterLines}}        <p>{{.}}</p>
{{end}}    </footer>

    <script>
        let allExpanded = false;

        function toggleSite(siteName) {
            const content = document.getElementById('content-' + siteName);
            const icon = event.currentTarget.querySelector('.toggle-icon');

            content.classList.toggle('expanded');
            icon.classList.toggle('expanded');
        }

        function toggleSubsection(sectionId) {
            const content = document.getElementById(sectionId);
            content.classList.toggle('expanded');
            event.target.querySelector('span').textContent =
                content.classList.contains('expanded') ? '▼' : '▶';
        }

        function toggleAll() {
            allExpanded = !allExpanded;
            const sections = document.querySelectorAll('.site-content');
            const icons = document.querySelectorAll('.toggle-icon');

            sections.forEach(section => {
                if (allExpanded) {
                    section.classList.add('expanded');
                } else {
                    section.classList.remove('expanded');
                }
            });

            icons.forEach(icon => {
                if (allExpanded) {
                    icon.classList.add('expanded');
                } else {
                    icon.classList.remove('expanded');
                }
            });

            event.target.textContent = allExpanded ? 'Collapse All Sites' : 'Expand All Sites';
        }

        document.getElementById('searchInput').addEventListener('input', function(e) {
            const searchTerm = e.target.value.toLowerCase();
            const pageItems = document.querySelectorAll('.page-item');

            pageItems.forEach(item => {
                const title = item.querySelector('.page-title').textContent.toLowerCase();
                const url = item.querySelector('.page-url').textContent.toLowerCase();

                if (title.includes(searchTerm) || url.includes(searchTerm)) {
                    item.style.display = 'block';
                    const site = item.closest('.site-section');
                    const content = site.querySelector('.site-content');
                    if (searchTerm.length > 2) {
                        content.classList.add('expanded');
                        site.querySelector('.toggle-icon').classList.add('expanded');
                    }
                } else {
                    item.style.display = 'none';
                }
            });
        });
    </script>
</body>
</html>
{{define "pagelist"}}<ul class="page-list">
{{range .}}                    <li class="page-item">
                        <div class="page-title">{{.Title}}</div>
                        <a href="{{.URL}}" class="page-url" target="_blank">{{.URL}}</a>
                        <div class="page-meta">{{.Meta}}</div>
                    </li>
{{end}}                    </ul>
{{end}}
{{define "section"}}                <div class="subsection">
                    <div class="subsection-header" onclick="toggleSubsection('{{.ID}}')">
                        <span>▶</span> {{.Label}}{{if .Badge}} <span class="badge">{{.Badge}}</span>{{end}}
                    </div>
                    <div class="subsection-content" id="{{.ID}}">
{{if .Pages}}{{template "pagelist" .Pages}}{{end}}{{range .Children}}{{template "section" .}}{{end}}
                    </div>
                </div>
{{end}}`
