//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 桌面构建只需要这个文件让 mobile 包可以被 go vet ./... 等命令加载。
// ebitenmobile 绑定入口（init 中调用 app.NewFarm 和 mobile.SetGame）
// 在 mobile.go 中，仅在使用 -tags mobile 时编译。
package mobile

// Dummy 是一个空导出函数，确保包在非移动端构建时也能被引用
func Dummy() {}
