package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lookingglass-go/internal/core"
	"github.com/lookingglass-go/internal/query"
)

// LoadRequestsFromFile 从文件加载构造请求列表
//
// 每行格式: device query_type target [vrf]，# 开头为注释。
// vrf 省略时使用 "default"。
func LoadRequestsFromFile(filename string) ([]core.Request, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	var requests []core.Request
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req, err := ParseRequest(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNum, err)
		}
		requests = append(requests, req)
	}

	return requests, scanner.Err()
}

// ParseRequest 解析单行构造请求
func ParseRequest(line string) (core.Request, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 4 {
		return core.Request{}, fmt.Errorf("expected 'device query_type target [vrf]', got %q", line)
	}

	queryType, err := query.ParseType(fields[1])
	if err != nil {
		return core.Request{}, err
	}

	vrf := "default"
	if len(fields) == 4 {
		vrf = fields[3]
	}

	return core.Request{
		Device: fields[0],
		Query: query.Query{
			Target: fields[2],
			VRF:    vrf,
			Type:   queryType,
		},
	}, nil
}

// FileExists 检查文件是否存在
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
