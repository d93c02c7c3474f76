package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 專案根目錄（由本檔位置往上兩層）
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		cwd, _ := os.Getwd()
		return cwd
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Resolve 相對路徑以專案根目錄為基準
func Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(RootPath(), p)
}
